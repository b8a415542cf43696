package queries_test

import (
	"context"
	"strings"
	"time"

	postgres_adapter "garment/internal/adapters/out/postgres"
	"garment/internal/adapters/out/postgres/bundlerepo"
	"garment/internal/adapters/out/postgres/cuttingrepo"
	"garment/internal/adapters/out/postgres/employeerepo"
	"garment/internal/adapters/out/postgres/loadingrepo"
	"garment/internal/adapters/out/postgres/orderrepo"
	"garment/internal/adapters/out/postgres/sizecategoryrepo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var day = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

// postgresSuite starts one database per query suite and resets it before each
// test to category ALPHA (S, M, L), orders ORD-1 and ORD-2 of style ST-100,
// ORD-3 of style ST-300, and employees E-1 (active) and E-7 (inactive).
type postgresSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *postgresSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))
}

func (suite *postgresSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *postgresSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE " + strings.Join(postgres_adapter.TableNames(), ", ") + " RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)

	suite.Require().NoError(suite.db.Create(&sizecategoryrepo.SizeCategoryDTO{
		ID:   3,
		Name: "ALPHA",
		Sizes: []sizecategoryrepo.SizeCategorySizeDTO{
			{CategoryID: 3, Size: "S", Position: 0},
			{CategoryID: 3, Size: "M", Position: 1},
			{CategoryID: 3, Size: "L", Position: 2},
		},
	}).Error)
	suite.Require().NoError(suite.db.Create(&[]orderrepo.OrderDTO{
		{ID: "ORD-1", StyleID: "ST-100", SizeCategoryID: 3, Quantities: []orderrepo.OrderSizeQuantityDTO{
			{OrderID: "ORD-1", Size: "S", Qty: 100},
			{OrderID: "ORD-1", Size: "M", Qty: 200},
			{OrderID: "ORD-1", Size: "L", Qty: 50},
		}},
		{ID: "ORD-2", StyleID: "ST-100", SizeCategoryID: 3, Quantities: []orderrepo.OrderSizeQuantityDTO{
			{OrderID: "ORD-2", Size: "M", Qty: 80},
		}},
		{ID: "ORD-3", StyleID: "ST-300", SizeCategoryID: 3, Quantities: []orderrepo.OrderSizeQuantityDTO{
			{OrderID: "ORD-3", Size: "M", Qty: 30},
		}},
	}).Error)
	suite.Require().NoError(suite.db.Create(&[]employeerepo.EmployeeDTO{
		{EmpID: "E-1", Name: "Line Leader", Department: "Production", DesignationLevel: 6, Status: "ACTIVE"},
		{EmpID: "E-7", Name: "Former Operator", Department: "Production", DesignationLevel: 9, Status: "INACTIVE"},
	}).Error)
}

func (suite *postgresSuite) addCutting(orderID, styleID, colour, size string, qty int, cutAt time.Time) int64 {
	dto := cuttingrepo.CuttingEntryDTO{
		OrderID: orderID, LayNo: 1, StyleID: styleID, ColourCode: colour, Size: size, Qty: qty, CutAt: cutAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *postgresSuite) addBundle(cuttingID int64, start, end int) int64 {
	var entry cuttingrepo.CuttingEntryDTO
	suite.Require().NoError(suite.db.First(&entry, cuttingID).Error)

	dto := bundlerepo.BundleDTO{
		CuttingEntryID: cuttingID,
		StyleID:        entry.StyleID,
		ColourCode:     entry.ColourCode,
		Size:           entry.Size,
		Qty:            end - start + 1,
		StartingNo:     start,
		EndingNo:       end,
		CreatedBy:      "E-1",
		LastChangedBy:  "E-1",
		CreatedAt:      day,
		UpdatedAt:      day,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

// addLoading stores a transaction in the given status. Approved and completed
// rows carry the matching approval and handover columns.
func (suite *postgresSuite) addLoading(orderID string, lineNo int, status string, createdAt time.Time,
	quantities map[string]int,
) uuid.UUID {
	var order orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&order, "id = ?", orderID).Error)

	id := uuid.New()
	dto := loadingrepo.LoadingTransactionDTO{
		ID:             id,
		OrderID:        orderID,
		StyleID:        order.StyleID,
		SizeCategoryID: 3,
		CategoryName:   "ALPHA",
		LineNo:         lineNo,
		EmployeeID:     "E-1",
		CreatedBy:      "E-1",
		Status:         status,
		CreatedAt:      createdAt,
	}
	position := 0
	for _, size := range []string{"S", "M", "L"} {
		if qty, ok := quantities[size]; ok {
			dto.Quantities = append(dto.Quantities, loadingrepo.LoadingQuantityDTO{
				LoadingTxID: id, Size: size, Position: position, Qty: qty,
			})
			position++
		}
	}
	if status == "APPROVED" || status == "COMPLETED" {
		approver, approvedAt := "E-9", createdAt.Add(time.Hour)
		dto.ApprovedBy, dto.ApprovedDate = &approver, &approvedAt
	}
	if status == "COMPLETED" {
		recipient, handedAt := "E-1", createdAt.Add(2*time.Hour)
		dto.HandoverBy, dto.HandoverDate = &recipient, &handedAt
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func (suite *postgresSuite) stamp(bundleID int64, loadingID uuid.UUID) {
	suite.Require().NoError(suite.db.Model(&bundlerepo.BundleDTO{}).
		Where("id = ?", bundleID).
		Updates(map[string]any{"loading_tx_id": loadingID, "loading_category_name": "ALPHA", "minus_qty": 0}).Error)
}

func (suite *postgresSuite) release(bundleID int64) {
	suite.Require().NoError(suite.db.Model(&bundlerepo.BundleDTO{}).
		Where("id = ?", bundleID).
		Updates(map[string]any{"loading_tx_id": nil, "loading_category_name": nil}).Error)
}
