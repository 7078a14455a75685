package csv

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/winexc/pkg/application/dto"
	"github.com/vsinha/winexc/pkg/domain/entities"
)

// Upload file names, in the order they are written
const (
	LineHaulZonesFile = "CSV Upload - Zones - Line Haul.csv"
	LocalZonesFile    = "CSV Upload - Zones - Local.csv"
	WindowsFile       = "CSV Upload - Windows.csv"
	DayMappingFile    = "Zone to Day Mapping.csv"
)

const (
	uploadOrderBy      = "1000"
	uploadIsVisible    = "FALSE"
	uploadSMSNotify    = "TRUE"
	mappingDateLayout  = "01/02/2006"
	mappingStampLayout = "01/02/2006 15:04"
)

var (
	windowHeader = []string{
		"windowId", "zoneId",
		"customizationStartDay", "customizationStartTime",
		"customizationEndDay", "customizationEndTime",
		"dispatchDay", "dispatchTime",
		"startDay", "startTime", "endDay", "endTime",
		"fulfillmentCenterId", "deliveryPrice", "subtotalMin", "deliveryProvider",
		"orderBy", "isVisible", "smsNotifications",
		"packDateOffset", "carrierDaysInTransit", "messageToUser",
	}
	zoneHeader = []string{
		"zoneId", "fulfillmentCenterId", "name", "timezone", "zonePickupAddressId",
		"expectedServiceTimeInMinutes", "isLineHaul", "pickupTime", "marketCode",
	}
	dayMappingHeader = []string{
		"Zone ID", "Zone Name", "Christmas or New Years", "Pack Date", "Delivery Date",
		"Custo Open Date / Time", "Custo Close Date / Time",
	}
)

// Writer produces the upload files for one generation result
type Writer struct {
	log    *zap.Logger
	rename func(oldpath, newpath string) error
}

// NewWriter creates a new upload writer
func NewWriter(log *zap.Logger) *Writer {
	return &Writer{log: log, rename: os.Rename}
}

type uploadFile struct {
	name string
	rows [][]string
}

// Write renders every upload file into a staging directory under outputDir
// and moves them into outputDir only once all of them were written. Files
// from a previous run are kept in staging until every move succeeded; on
// failure they are put back and nothing new is left behind. Returns the
// final paths.
func (w *Writer) Write(ctx context.Context, outputDir string, result *dto.GenerationResult) ([]string, error) {
	const op = "csv.Writer.Write"
	log := w.log.With(zap.String("op", op), zap.String("output", outputDir))

	files := []uploadFile{
		{name: LineHaulZonesFile, rows: zoneRows(result.LineHaulZones, true)},
		{name: LocalZonesFile, rows: zoneRows(result.LocalZones, false)},
		{name: WindowsFile, rows: windowRows(result.Windows)},
		{name: DayMappingFile, rows: dayMappingRows(result.DayMappings)},
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", outputDir)
	}
	staging, err := os.MkdirTemp(outputDir, ".winexc-staging-")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create staging directory")
	}
	defer os.RemoveAll(staging)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := writeFile(filepath.Join(staging, file.name), file.rows); err != nil {
			return nil, err
		}
	}

	for _, file := range files {
		target := filepath.Join(outputDir, file.name)
		if info, err := os.Lstat(target); err == nil && info.IsDir() {
			return nil, errors.Errorf("cannot replace directory %s with %s", target, file.name)
		}
	}

	var moved []string
	previous := make(map[string]string)
	rollback := func() {
		for i := len(moved) - 1; i >= 0; i-- {
			target := moved[i]
			if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
				log.Warn("failed to remove partial upload file", zap.String("file", target), zap.Error(err))
			}
			if backup, ok := previous[target]; ok {
				if err := w.rename(backup, target); err != nil {
					log.Warn("failed to restore previous upload file", zap.String("file", target), zap.Error(err))
				}
			}
		}
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		target := filepath.Join(outputDir, file.name)
		if _, err := os.Lstat(target); err == nil {
			backup := filepath.Join(staging, "previous-"+file.name)
			if err := w.rename(target, backup); err != nil {
				rollback()
				return nil, errors.Wrapf(err, "failed to set aside previous %s", file.name)
			}
			previous[target] = backup
		}
		moved = append(moved, target)

		if err := w.rename(filepath.Join(staging, file.name), target); err != nil {
			rollback()
			return nil, errors.Wrapf(err, "failed to move %s into place", file.name)
		}
		paths = append(paths, target)
		log.Debug("wrote upload file", zap.String("file", file.name), zap.Int("rows", len(file.rows)-1))
	}

	return paths, nil
}

func writeFile(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Base(path))
	}

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to write %s", filepath.Base(path))
	}
	return errors.Wrapf(file.Close(), "failed to close %s", filepath.Base(path))
}

func windowRows(windows []entities.GeneratedWindow) [][]string {
	rows := make([][]string, 0, len(windows)+1)
	rows = append(rows, windowHeader)
	for _, generated := range windows {
		w := generated.Window

		subtotal := ""
		if w.SubtotalMin.Valid {
			subtotal = decimalCell(w.SubtotalMin.Decimal)
		}
		carrierDays := ""
		if w.CarrierDaysInTransit != nil {
			carrierDays = strconv.Itoa(*w.CarrierDaysInTransit)
		}

		rows = append(rows, []string{
			string(w.ID), string(w.ZoneID),
			w.CustomizationStartDay.String(), w.CustomizationStartTime.String(),
			w.CustomizationEndDay.String(), w.CustomizationEndTime.String(),
			w.DispatchDay.String(), w.DispatchTime.String(),
			w.StartDay.String(), w.StartTime.String(),
			w.EndDay.String(), w.EndTime.String(),
			w.FulfillmentCenterID, decimalCell(w.DeliveryPrice), subtotal, w.DeliveryProvider,
			uploadOrderBy, uploadIsVisible, uploadSMSNotify,
			strconv.Itoa(w.PackDateOffset), carrierDays, w.MessageToUser,
		})
	}
	return rows
}

func zoneRows(zones []entities.Zone, lineHaul bool) [][]string {
	header := zoneHeader
	if lineHaul {
		header = append(append([]string{}, zoneHeader...), "transitTime")
	}

	rows := make([][]string, 0, len(zones)+1)
	rows = append(rows, header)
	for _, z := range zones {
		row := []string{
			string(z.ID), z.FulfillmentCenterID, z.Name, z.Timezone, z.PickupAddressID,
			strconv.Itoa(z.ExpectedServiceMinutes), boolCell(z.IsLineHaul),
			z.PickupTime.HourMinute(), string(z.MarketCode),
		}
		if lineHaul {
			transit := ""
			if z.TransitTime != nil {
				transit = z.TransitTime.HourMinute()
			}
			row = append(row, transit)
		}
		rows = append(rows, row)
	}
	return rows
}

func dayMappingRows(mappings []dto.DayMapping) [][]string {
	rows := make([][]string, 0, len(mappings)+1)
	rows = append(rows, dayMappingHeader)
	for _, m := range mappings {
		rows = append(rows, []string{
			string(m.ZoneID), m.ZoneName, m.Holiday,
			m.PackDate.Format(mappingDateLayout),
			m.DeliveryDate.Format(mappingDateLayout),
			m.CustomizationOpens.Format(mappingStampLayout),
			m.CustomizationCloses.Format(mappingStampLayout),
		})
	}
	return rows
}

// decimalCell keeps the precision the amount was read with
func decimalCell(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

func boolCell(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
