package controllers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"packing-app/billing"
	"packing-app/controllers/idgen"
	"packing-app/models"
)

type BillController struct {
	DB *gorm.DB
}

func NewBillController(DB *gorm.DB) *BillController {
	return &BillController{DB: DB}
}

type billInput struct {
	BillNo       string               `json:"billNo"`
	Date         string               `json:"date"`
	CustomerName string               `json:"customerName" validate:"required"`
	Station      string               `json:"station"`
	VehicleNo    string               `json:"vehicleNo"`
	VehicleType  string               `json:"vehicleType"`
	Items        []billing.Line       `json:"items"`
	Adjustments  []billing.Adjustment `json:"adjustments"`
	Rates        map[string]float64   `json:"rates"`
	ManualTotal  *float64             `json:"manualTotal"`
}

// buildSession replays the posted bill state into an aggregation session.
func buildSession(input *billInput) (*billing.Session, error) {
	session := billing.NewSession()
	for _, line := range input.Items {
		session.AddLine(line)
	}
	for id, rate := range input.Rates {
		session.SetRate(id, rate)
	}
	for _, adj := range input.Adjustments {
		if _, err := session.AddAdjustment(adj.Type, adj.Desc, adj.Amount); err != nil {
			return nil, err
		}
	}
	session.SetManualTotal(input.ManualTotal)
	return session, nil
}

// Preview runs the aggregation engine over the posted session state and
// returns the summary, the mismatch signal and the paginated document
// without persisting anything.
func (c *BillController) Preview(ctx *fiber.Ctx) error {
	var input billInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session, err := buildSession(&input)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result := session.Recompute()
	mode := ctx.Query("mode", billing.ModeBill)
	if mode != billing.ModeBill && mode != billing.ModeSlip {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "mode must be bill or slip"})
	}
	doc := billing.Paginate(session.Lines(), result, mode)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"summary":  result,
		"document": doc,
	})
}

func (c *BillController) GetAllBills(ctx *fiber.Ctx) error {
	var bills []models.Bill
	if err := c.DB.Preload("Items").Preload("Adjustments").
		Order("created_at DESC").Find(&bills).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": bills})
}

func (c *BillController) GetBillByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var bill models.Bill
	if err := c.DB.Preload("Items").Preload("Adjustments").First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Bill not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": bill})
}

func (c *BillController) SearchByBillNo(ctx *fiber.Ctx) error {
	billNo := ctx.Params("billNo")

	var bill models.Bill
	if err := c.DB.Preload("Items").Preload("Adjustments").
		Where("bill_no = ?", billNo).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Bill not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": bill})
}

// CreateBill persists the billing session wholesale: the items are a
// snapshot, and the totals are recomputed server-side through the same
// engine the preview uses.
func (c *BillController) CreateBill(ctx *fiber.Ctx) error {
	var input billInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session, err := buildSession(&input)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	result := session.Recompute()

	billNo := input.BillNo
	if billNo == "" {
		billNo = idgen.GenerateBillNo()
	}

	bill := models.Bill{
		BillNo:          billNo,
		Date:            input.Date,
		CustomerName:    input.CustomerName,
		Station:         input.Station,
		VehicleNo:       input.VehicleNo,
		VehicleType:     input.VehicleType,
		SumOfItems:      result.SumOfItems,
		AdjustmentTotal: result.AdjustmentTotal,
		CalculatedTotal: result.CalculatedTotal,
		ManualTotal:     input.ManualTotal,
		GrandTotal:      result.GrandTotal,
		CreatedBy:       ctx.Locals("username").(string),
	}
	for _, line := range session.Lines() {
		bill.Items = append(bill.Items, models.BillItem{
			Sr:       line.Sr,
			ItemName: line.ItemName,
			Qty:      line.Qty,
			UCap:     line.UCap,
			LCap:     line.LCap,
			Rate:     line.Rate,
			Amount:   line.Amount,
			Group:    line.Group,
			SubGroup: line.SubGroup,
		})
	}
	for _, adj := range session.Adjustments() {
		bill.Adjustments = append(bill.Adjustments, models.BillAdjustment{
			Type:   adj.Type,
			Desc:   adj.Desc,
			Amount: adj.Amount,
		})
	}

	if err := c.DB.Create(&bill).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Bill created successfully", "data": bill})
}

// UpdateBill replaces the bill wholesale, snapshot included.
func (c *BillController) UpdateBill(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var bill models.Bill
	if err := c.DB.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Bill not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input billInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session, err := buildSession(&input)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	result := session.Recompute()

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", bill.ID).Delete(&models.BillItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("bill_id = ?", bill.ID).Delete(&models.BillAdjustment{}).Error; err != nil {
			return err
		}

		if input.BillNo != "" {
			bill.BillNo = input.BillNo
		}
		bill.Date = input.Date
		bill.CustomerName = input.CustomerName
		bill.Station = input.Station
		bill.VehicleNo = input.VehicleNo
		bill.VehicleType = input.VehicleType
		bill.SumOfItems = result.SumOfItems
		bill.AdjustmentTotal = result.AdjustmentTotal
		bill.CalculatedTotal = result.CalculatedTotal
		bill.ManualTotal = input.ManualTotal
		bill.GrandTotal = result.GrandTotal

		bill.Items = nil
		bill.Adjustments = nil
		for _, line := range session.Lines() {
			bill.Items = append(bill.Items, models.BillItem{
				BillID:   bill.ID,
				Sr:       line.Sr,
				ItemName: line.ItemName,
				Qty:      line.Qty,
				UCap:     line.UCap,
				LCap:     line.LCap,
				Rate:     line.Rate,
				Amount:   line.Amount,
				Group:    line.Group,
				SubGroup: line.SubGroup,
			})
		}
		for _, adj := range session.Adjustments() {
			bill.Adjustments = append(bill.Adjustments, models.BillAdjustment{
				BillID: bill.ID,
				Type:   adj.Type,
				Desc:   adj.Desc,
				Amount: adj.Amount,
			})
		}

		return tx.Save(&bill).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Bill updated successfully", "data": bill})
}

func (c *BillController) DeleteBill(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.DB.Delete(&models.Bill{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Bill deleted successfully"})
}

var exportHeader = []string{
	"Bill No", "Date", "Customer", "Station", "Vehicle No",
	"Sr", "Item Name", "Qty", "U Cap", "L Cap", "Rate", "Amount",
	"Group", "Sub Group", "Grand Total",
}

func exportRows(bills []models.Bill) [][]string {
	rows := [][]string{exportHeader}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	for _, bill := range bills {
		for _, item := range bill.Items {
			rows = append(rows, []string{
				bill.BillNo, bill.Date, bill.CustomerName, bill.Station, bill.VehicleNo,
				strconv.Itoa(item.Sr), item.ItemName, f(item.Qty), f(item.UCap), f(item.LCap),
				f(item.Rate), f(item.Amount), item.Group, item.SubGroup, f(bill.GrandTotal),
			})
		}
	}
	return rows
}

// Export streams all bills flattened to one row per line item, as CSV or
// as an Excel workbook.
func (c *BillController) Export(ctx *fiber.Ctx) error {
	var bills []models.Bill
	if err := c.DB.Preload("Items").Order("created_at DESC").Find(&bills).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	rows := exportRows(bills)

	switch ctx.Query("format", "csv") {
	case "xlsx":
		f := excelize.NewFile()
		defer f.Close()
		sheet := f.GetSheetName(0)
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
		}
		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		ctx.Set("Content-Disposition", `attachment; filename="bills.xlsx"`)
		return ctx.Send(buf.Bytes())
	case "csv":
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.WriteAll(rows); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		ctx.Set("Content-Type", "text/csv")
		ctx.Set("Content-Disposition", `attachment; filename="bills.csv"`)
		return ctx.Send(buf.Bytes())
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("unknown format %q", ctx.Query("format"))})
	}
}
