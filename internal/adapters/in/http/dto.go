package http

import (
	"time"

	"garment/internal/core/application/usecases/queries"
	"garment/internal/core/domain/model/bundle"
	"garment/internal/core/domain/model/loading"
	"garment/internal/core/domain/services"
)

type BundleShapeRequest struct {
	Qty        int `json:"qty"`
	StartingNo int `json:"startingNo"`
	EndingNo   int `json:"endingNo"`
}

type NewBundleRequest struct {
	CuttingID int64 `json:"cuttingId"`
	BundleShapeRequest
}

type BundleResponse struct {
	ID            int64   `json:"id"`
	CuttingID     int64   `json:"cuttingId"`
	StyleID       string  `json:"styleId"`
	ColourCode    string  `json:"colourCode"`
	Size          string  `json:"size"`
	Qty           int     `json:"qty"`
	StartingNo    int     `json:"startingNo"`
	EndingNo      int     `json:"endingNo"`
	LoadingTxID   *string `json:"loadingTxId"`
	MinusQty      *int    `json:"minusQty"`
	MinusReason   *string `json:"minusReason"`
	FinalQty      *int    `json:"finalQty"`
	CreatedBy     string  `json:"createdBy"`
	LastChangedBy string  `json:"lastChangedBy"`
}

func toBundleResponse(b *bundle.Bundle) BundleResponse {
	resp := BundleResponse{
		ID:            b.ID(),
		CuttingID:     b.CuttingID(),
		StyleID:       b.StyleID(),
		ColourCode:    b.ColourCode(),
		Size:          b.Size(),
		Qty:           b.Qty(),
		StartingNo:    b.Serial().Start(),
		EndingNo:      b.Serial().End(),
		CreatedBy:     b.CreatedBy(),
		LastChangedBy: b.LastChangedBy(),
	}
	if c := b.Consumption(); c != nil {
		loadingID := c.LoadingID.String()
		resp.LoadingTxID = &loadingID
		resp.MinusQty = &c.MinusQty
		resp.MinusReason = &c.MinusReason
		resp.FinalQty = &c.FinalQty
	}
	return resp
}

type BundleSelectionRequest struct {
	BundleID int64  `json:"bundleId"`
	MinusQty int    `json:"minusQty"`
	Reason   string `json:"reason"`
}

type NewLoadingTransactionRequest struct {
	EmployeeID string                   `json:"employeeId"`
	LineNo     int                      `json:"lineNo"`
	OrderID    string                   `json:"orderId"`
	Quantities map[string]int           `json:"quantities"`
	Bundles    []BundleSelectionRequest `json:"bundles"`
}

type ApprovalRequest struct {
	CategoryName string `json:"categoryName"`
	ApproverID   string `json:"approverId"`
}

type RejectionRequest struct {
	CategoryName string `json:"categoryName"`
}

type HandoverRequest struct {
	CategoryName   string `json:"categoryName"`
	HandoverID     string `json:"handoverId"`
	VariantStyleID string `json:"variantStyleId"`
}

type SizeQtyResponse struct {
	Size string `json:"size"`
	Qty  int    `json:"qty"`
}

type LoadingTransactionResponse struct {
	ID              string            `json:"id"`
	OrderID         string            `json:"orderId"`
	StyleID         string            `json:"styleId"`
	CategoryName    string            `json:"categoryName"`
	LineNo          int               `json:"lineNo"`
	EmployeeID      string            `json:"employeeId"`
	CreatedBy       string            `json:"createdBy"`
	Status          string            `json:"status"`
	ApprovedBy      *string           `json:"approvedBy"`
	ApprovedDate    *time.Time        `json:"approvedDate"`
	HandoverBy      *string           `json:"handoverBy"`
	HandoverDate    *time.Time        `json:"handoverDate"`
	HandoverStyleID *string           `json:"handoverStyleId"`
	Quantities      []SizeQtyResponse `json:"quantities"`
	CreatedAt       time.Time         `json:"createdAt"`
}

func toLoadingResponse(t *loading.Transaction) LoadingTransactionResponse {
	items := t.Quantities().Items()
	quantities := make([]SizeQtyResponse, 0, len(items))
	for _, item := range items {
		quantities = append(quantities, SizeQtyResponse{Size: item.Size, Qty: item.Qty})
	}

	return LoadingTransactionResponse{
		ID:              t.ID().String(),
		OrderID:         t.OrderID(),
		StyleID:         t.StyleID(),
		CategoryName:    t.Category().Name,
		LineNo:          t.LineNo(),
		EmployeeID:      t.EmployeeID(),
		CreatedBy:       t.CreatedBy(),
		Status:          t.Status().String(),
		ApprovedBy:      t.ApprovedBy(),
		ApprovedDate:    t.ApprovedDate(),
		HandoverBy:      t.HandoverBy(),
		HandoverDate:    t.HandoverDate(),
		HandoverStyleID: t.HandoverStyleID(),
		Quantities:      quantities,
		CreatedAt:       t.CreatedAt(),
	}
}

type SizeStatResponse struct {
	Size                 string `json:"size"`
	OrderQty             int    `json:"orderQty"`
	CutQty               int    `json:"cutQty"`
	BundledQty           int    `json:"bundledQty"`
	AvailableForBundling int    `json:"availableForBundling"`
	CutPercent           string `json:"cutPercent"`
	BundledPercent       string `json:"bundledPercent"`
}

type BundleStatsResponse struct {
	OrderID      string             `json:"orderId"`
	StyleID      string             `json:"styleId"`
	CategoryName string             `json:"categoryName"`
	Sizes        []SizeStatResponse `json:"sizes"`
	Total        SizeStatResponse   `json:"total"`
}

func toSizeStatResponse(s services.SizeStat) SizeStatResponse {
	return SizeStatResponse{
		Size:                 s.Size,
		OrderQty:             s.OrderQty,
		CutQty:               s.CutQty,
		BundledQty:           s.BundledQty,
		AvailableForBundling: s.AvailableForBundling,
		CutPercent:           s.CutPercent.StringFixed(2),
		BundledPercent:       s.BundledPercent.StringFixed(2),
	}
}

func toBundleStatsResponse(stats *queries.BundleStatsBySizeResponse) BundleStatsResponse {
	sizes := make([]SizeStatResponse, 0, len(stats.Sizes))
	for _, s := range stats.Sizes {
		sizes = append(sizes, toSizeStatResponse(s))
	}
	return BundleStatsResponse{
		OrderID:      stats.OrderID,
		StyleID:      stats.StyleID,
		CategoryName: stats.CategoryName,
		Sizes:        sizes,
		Total:        toSizeStatResponse(stats.Total),
	}
}

type AvailableBundleResponse struct {
	ID         int64  `json:"id"`
	CuttingID  int64  `json:"cuttingId"`
	LayNo      int    `json:"layNo"`
	StyleID    string `json:"styleId"`
	ColourCode string `json:"colourCode"`
	Size       string `json:"size"`
	Qty        int    `json:"qty"`
	StartingNo int    `json:"startingNo"`
	EndingNo   int    `json:"endingNo"`
}

type EmployeeResponse struct {
	EmpID            string `json:"empId"`
	Name             string `json:"name"`
	Department       string `json:"department"`
	DesignationLevel int    `json:"designationLevel"`
	Status           string `json:"status"`
}

type LastLoadingResponse struct {
	OrderID     string    `json:"orderId"`
	StyleID     string    `json:"styleId"`
	ColourCodes []string  `json:"colourCodes"`
	CompletedAt time.Time `json:"completedAt"`
}

type CuttingActivityResponse struct {
	OrderID    string    `json:"orderId"`
	StyleID    string    `json:"styleId"`
	ColourCode string    `json:"colourCode"`
	PendingQty int       `json:"pendingQty"`
	LastCutAt  time.Time `json:"lastCutAt"`
}

type RecommendationResponse struct {
	LineNo   int                      `json:"lineNo"`
	Tier     string                   `json:"tier"`
	Message  string                   `json:"message,omitempty"`
	Last     *LastLoadingResponse     `json:"lastLoading,omitempty"`
	Activity *CuttingActivityResponse `json:"recommended,omitempty"`
}

func toRecommendationResponse(r *queries.GetRecommendationResponse) RecommendationResponse {
	resp := RecommendationResponse{LineNo: r.LineNo, Tier: string(r.Tier)}
	if r.Last != nil {
		resp.Last = &LastLoadingResponse{
			OrderID:     r.Last.OrderID,
			StyleID:     r.Last.StyleID,
			ColourCodes: r.Last.ColourCodes,
			CompletedAt: r.Last.CompletedAt,
		}
	}
	if r.Activity != nil {
		resp.Activity = &CuttingActivityResponse{
			OrderID:    r.Activity.OrderID,
			StyleID:    r.Activity.StyleID,
			ColourCode: r.Activity.ColourCode,
			PendingQty: r.Activity.PendingQty,
			LastCutAt:  r.Activity.LastCutAt,
		}
	}
	if !r.HasHistory() {
		resp.Message = "no loading history to recommend from; select an order manually"
	}
	return resp
}

type LoadingSummaryResponse struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	StyleID      string    `json:"styleId"`
	CategoryName string    `json:"categoryName"`
	LineNo       int       `json:"lineNo"`
	EmployeeID   string    `json:"employeeId"`
	Status       string    `json:"status"`
	ApprovedBy   *string   `json:"approvedBy"`
	HandoverBy   *string   `json:"handoverBy"`
	TotalQty     int       `json:"totalQty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type DashboardResponse struct {
	Completed       []LoadingSummaryResponse `json:"completed"`
	PendingApproval []LoadingSummaryResponse `json:"pendingApproval"`
	PendingHandover []LoadingSummaryResponse `json:"pendingHandover"`
}

func toSummaries(in []queries.LoadingSummary) []LoadingSummaryResponse {
	out := make([]LoadingSummaryResponse, 0, len(in))
	for _, s := range in {
		out = append(out, LoadingSummaryResponse{
			ID:           s.ID.String(),
			OrderID:      s.OrderID,
			StyleID:      s.StyleID,
			CategoryName: s.CategoryName,
			LineNo:       s.LineNo,
			EmployeeID:   s.EmployeeID,
			Status:       s.Status,
			ApprovedBy:   s.ApprovedBy,
			HandoverBy:   s.HandoverBy,
			TotalQty:     s.TotalQty,
			CreatedAt:    s.CreatedAt,
		})
	}
	return out
}
