package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName  = "Requests"
	timeLayout = "2006-01-02 15:04:05"
)

var headers = []string{"ID", "User ID", "Username", "Full name", "Status", "Requested at", "Processed by", "Processed at"}

// WriteRequests renders the request history of a channel as an xlsx workbook.
// Times are shown in loc.
func WriteRequests(w io.Writer, channel *entity.Channel, requests []*entity.JoinRequest, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	f.SetColWidth(sheetName, "A", "B", 14)
	f.SetColWidth(sheetName, "C", "D", 24)
	f.SetColWidth(sheetName, "E", "E", 12)
	f.SetColWidth(sheetName, "F", "H", 20)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s (%d)", channel.Title, channel.ID))
	f.MergeCell(sheetName, "A1", cell(len(headers)-1, 1))
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	for i, h := range headers {
		f.SetCellValue(sheetName, cell(i, 2), h)
	}
	f.SetCellStyle(sheetName, "A2", cell(len(headers)-1, 2), headerStyle)

	row := 3
	for _, r := range requests {
		values := []interface{}{
			r.ID,
			strconv.FormatInt(r.UserID, 10),
			r.Username,
			r.FullName,
			string(r.Status),
			r.CreatedAt.In(loc).Format(timeLayout),
			"",
			"",
		}
		if r.ProcessedBy != nil {
			values[6] = strconv.FormatInt(*r.ProcessedBy, 10)
		}
		if r.ProcessedAt != nil {
			values[7] = r.ProcessedAt.In(loc).Format(timeLayout)
		}

		if err := f.SetSheetRow(sheetName, cell(0, row), &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
		row++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// FileName is the download name for a channel export taken at now.
func FileName(channelID int64, now time.Time) string {
	return fmt.Sprintf("join_requests_%d_%s.xlsx", channelID, now.Format("20060102_150405"))
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
