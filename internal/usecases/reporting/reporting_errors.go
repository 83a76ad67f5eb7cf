package reporting

import (
	"errors"
)

var (
	ErrSalesNotLoaded = errors.New("sales data not loaded")
	ErrLoadSales      = errors.New("error loading sales data")
	ErrExportReport   = errors.New("error exporting sales report")
)
