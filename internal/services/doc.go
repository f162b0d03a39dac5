// Package services holds the application services sitting between the
// HTTP transport and the extraction/normalization core. StudentService
// owns the session dataset: the records of the most recently uploaded
// spreadsheet, replaced wholesale on every upload.
package services
