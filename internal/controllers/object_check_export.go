package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inspection-system/internal/dto"
	"inspection-system/internal/services"
	"inspection-system/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var checkExportHeaders = []interface{}{
	"№", "ID", "Дата проверки", "Тип проверки", "Шаблон", "Инспектор", "Статус", "Комментарий", "Ссылка", "Создана",
}

func checkToRow(n int, check dto.ObjectCheckDTO) []interface{} {
	return []interface{}{
		n, check.ID, check.DateOfInspection, check.CheckTypeName, check.TemplateName,
		check.InspectorName.String, check.Status, check.Comments.String, check.LinkURL, check.CreatedAt,
	}
}

// BuildChecksWorkbook - лист с проверками объекта, первая строка - жирные заголовки.
func BuildChecksWorkbook(export *services.ObjectCheckExport) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := exportSheetName(export)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := checkExportHeaders
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(checkExportHeaders))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", style); err != nil {
		return nil, err
	}

	for i, check := range export.Checks {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := checkToRow(i+1, check)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	_ = f.SetColWidth(sheet, "C", "F", 25)
	_ = f.SetColWidth(sheet, "H", "I", 40)
	return f, nil
}

// Excel не допускает в имени листа символы : \ / ? * [ ] и апостроф по краям.
var sheetNameReplacer = strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "(", "]", ")")

// Имя листа Excel ограничено 31 символом.
func exportSheetName(export *services.ObjectCheckExport) string {
	name := sheetNameReplacer.Replace(fmt.Sprintf("%s (%s)", export.Object.Name, export.Object.CityName))
	runes := []rune(name)
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(string(runes)), "'"))
}

func (c *ObjectCheckController) ExportChecks(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, c.timeout)
	defer cancel()

	objectID, err := utils.ParseIDParam(ctx, "object_id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	export, err := c.checkService.Export(reqCtx, objectID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	f, err := BuildChecksWorkbook(export)
	if err != nil {
		c.logger.Error("Не удалось сформировать xlsx", zap.Int64("object_id", objectID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer f.Close()

	fileName := fmt.Sprintf("checks_%d_%s.xlsx", objectID, time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
