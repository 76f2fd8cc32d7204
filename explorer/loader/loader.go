package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/domain/entities/triptable"
	explorerErrors "bikeshare/explorer/errors"
	"bikeshare/utils"
)

const loaderType = "dataset-loader"

// DatasetPathResolver returns the file of a city
type DatasetPathResolver interface {
	GetDatasetPath(city string) (string, error)
}

// Loader reads the trips of a city and filters them by month and day
type Loader struct {
	resolver         DatasetPathResolver
	startTimeLayouts []string
	out              io.Writer
	separator        string
}

func NewLoader(resolver DatasetPathResolver, startTimeLayouts []string, out io.Writer, separatorWidth int) *Loader {
	return &Loader{
		resolver:         resolver,
		startTimeLayouts: startTimeLayouts,
		out:              out,
		separator:        utils.GetSeparator(separatorWidth),
	}
}

func (l *Loader) getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[loader: %s][city: %s][method: %s][status: ERROR] %s: %s", loaderType, city, method, message, err.Error())
	}
	return fmt.Sprintf("[loader: %s][city: %s][method: %s][status: OK] %s", loaderType, city, method, message)
}

// Load returns the trips of the selected city, filtered by month and day when they are not "all".
// The flow of this function is:
// 1. Print the active selection
// 2. Read the city file
// 3. Derive month, day_of_week and hour from Start Time
// 4. Keep the rows of the selected month, then the rows of the selected day
func (l *Loader) Load(filters selection.Selection) (*triptable.Table, error) {
	if !filters.IsValid() {
		return nil, errors.Wrapf(explorerErrors.ErrInvalidSelection, "%+v", filters)
	}

	l.printSelection(filters)

	df, err := l.readDataset(filters.GetCity())
	if err != nil {
		return nil, err
	}

	df, err = l.addDerivedColumns(filters.GetCity(), df)
	if err != nil {
		return nil, err
	}

	df, err = filterTrips(df, filters)
	if err != nil {
		log.Error(l.getLogMessage(filters.GetCity(), "Load", "error filtering trips", err))
		return nil, errors.Wrapf(explorerErrors.ErrMalformedDataset, "filtering %s trips: %s", filters.GetCity(), err)
	}

	log.Debug(l.getLogMessage(filters.GetCity(), "Load", fmt.Sprintf("%v trips loaded", df.Nrow()), nil))
	return triptable.NewTable(df), nil
}

func (l *Loader) printSelection(filters selection.Selection) {
	fmt.Fprintf(l.out, "Analyzing data for %s\n", selection.Title(filters.GetCity()))
	if filters.FiltersMonth() {
		fmt.Fprintf(l.out, "Month: %s\n", selection.Title(filters.GetMonth()))
	}
	if filters.FiltersDay() {
		fmt.Fprintf(l.out, "Day: %s\n", selection.Title(filters.GetDay()))
	}
	fmt.Fprintln(l.out, l.separator)
}

// readDataset reads the file of the city. Every column is read as text except Trip Duration and
// Birth Year, whose empty values become NaN. A file with a header and no rows is an empty dataset
func (l *Loader) readDataset(city string) (dataframe.DataFrame, error) {
	datasetPath, err := l.resolver.GetDatasetPath(city)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	datasetFile, err := os.Open(datasetPath)
	if err != nil {
		log.Error(l.getLogMessage(city, "readDataset", fmt.Sprintf("error opening %s", datasetPath), err))
		return dataframe.DataFrame{}, errors.Wrapf(explorerErrors.ErrDatasetNotFound, "%s: %s", datasetPath, err)
	}

	defer func(datasetFile *os.File) {
		err := datasetFile.Close()
		if err != nil {
			log.Error(l.getLogMessage(city, "readDataset", fmt.Sprintf("error closing %s", datasetPath), err))
		}
	}(datasetFile)

	records, err := csv.NewReader(datasetFile).ReadAll()
	if err != nil {
		log.Error(l.getLogMessage(city, "readDataset", fmt.Sprintf("error reading %s", datasetPath), err))
		return dataframe.DataFrame{}, errors.Wrapf(explorerErrors.ErrMalformedDataset, "%s: %s", datasetPath, err)
	}
	if len(records) == 0 {
		return dataframe.DataFrame{}, errors.Wrapf(explorerErrors.ErrMalformedDataset, "%s has no header", datasetPath)
	}

	for _, column := range trip.RequiredColumns() {
		if !utils.ContainsString(column, records[0]) {
			return dataframe.DataFrame{}, errors.Wrapf(explorerErrors.ErrMissingColumn, "%s has no '%s' column", datasetPath, column)
		}
	}

	var df dataframe.DataFrame
	if len(records) == 1 {
		log.Debug(l.getLogMessage(city, "readDataset", fmt.Sprintf("%s has no trips", datasetPath), nil))
		df = emptyDataset(records[0])
	} else {
		df = dataframe.LoadRecords(
			records,
			dataframe.DetectTypes(false),
			dataframe.DefaultType(series.String),
			dataframe.WithTypes(columnTypes),
			dataframe.NaNValues(nil),
		)
	}
	if df.Err != nil {
		log.Error(l.getLogMessage(city, "readDataset", fmt.Sprintf("error loading %s", datasetPath), df.Err))
		return dataframe.DataFrame{}, errors.Wrapf(explorerErrors.ErrMalformedDataset, "%s: %s", datasetPath, df.Err)
	}

	return df, nil
}

var columnTypes = map[string]series.Type{
	trip.Duration:  series.Float,
	trip.BirthYear: series.Float,
}

// emptyDataset returns a dataframe with the given columns and no rows
func emptyDataset(header []string) dataframe.DataFrame {
	columns := make([]series.Series, len(header))
	for i, name := range header {
		columnType, ok := columnTypes[name]
		if !ok {
			columnType = series.String
		}
		columns[i] = series.New([]string{}, columnType, name)
	}
	return dataframe.New(columns...)
}

// addDerivedColumns appends month (1-12), day_of_week (0 is Monday) and hour (0-23), taken from Start Time
func (l *Loader) addDerivedColumns(city string, df dataframe.DataFrame) (dataframe.DataFrame, error) {
	startTimes := df.Col(trip.StartTime).Records()
	months := make([]int, len(startTimes))
	daysOfWeek := make([]int, len(startTimes))
	hours := make([]int, len(startTimes))

	for i, startTimeStr := range startTimes {
		startTime, err := l.parseStartTime(startTimeStr)
		if err != nil {
			log.Debug(l.getLogMessage(city, "addDerivedColumns", fmt.Sprintf("invalid start time in row %v: %s", i+1, startTimeStr), nil))
			return dataframe.DataFrame{}, errors.Wrapf(explorerErrors.ErrInvalidStartTime, "row %v: '%s'", i+1, startTimeStr)
		}

		months[i] = int(startTime.Month())
		daysOfWeek[i] = MondayOrigin(startTime.Weekday())
		hours[i] = startTime.Hour()
	}

	df = df.Mutate(series.New(months, series.Int, trip.Month)).
		Mutate(series.New(daysOfWeek, series.Int, trip.DayOfWeek)).
		Mutate(series.New(hours, series.Int, trip.Hour))
	if df.Err != nil {
		return dataframe.DataFrame{}, errors.Wrapf(explorerErrors.ErrMalformedDataset, "deriving columns: %s", df.Err)
	}

	return df, nil
}

func (l *Loader) parseStartTime(value string) (time.Time, error) {
	err := errors.New("no start time layouts configured")
	for _, layout := range l.startTimeLayouts {
		var startTime time.Time
		startTime, err = time.Parse(layout, value)
		if err == nil {
			return startTime, nil
		}
	}
	return time.Time{}, err
}

// filterTrips keeps the rows of the selected month and day. Filters are applied one after the
// other so that both must match; gota keeps the row order
func filterTrips(df dataframe.DataFrame, filters selection.Selection) (dataframe.DataFrame, error) {
	if df.Nrow() == 0 {
		return df, nil
	}

	if month, ok := filters.MonthNumber(); ok {
		df = df.Filter(dataframe.F{Colname: trip.Month, Comparator: series.Eq, Comparando: month})
	}

	if day, ok := filters.DayNumber(); ok {
		df = df.Filter(dataframe.F{Colname: trip.DayOfWeek, Comparator: series.Eq, Comparando: day})
	}

	return df, df.Err
}

// MondayOrigin converts a time.Weekday (0 is Sunday) to a weekday where 0 is Monday and 6 is Sunday
func MondayOrigin(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}
