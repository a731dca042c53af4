package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	apperrors "solotravel-backend/errors"
	"solotravel-backend/services"
)

// readCSVBody accepts either a raw text/csv body or a multipart form
// with a "file" field, mirroring both ways clients upload spreadsheets.
func readCSVBody(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return "", apperrors.InvalidRequest("Missing 'file' field in multipart upload.")
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return "", apperrors.InternalError(err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return string(data), nil
}

// ImportItineraryCSV replaces the whole itinerary with the uploaded
// rows. The destructive overwrite is the documented contract; clients
// must confirm with the user before calling.
func (h *Handlers) ImportItineraryCSV(w http.ResponseWriter, r *http.Request) {
	text, err := readCSVBody(r)
	if err != nil {
		handleError(w, err)
		return
	}

	result, err := h.importService.ImportActivities(text)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *Handlers) ImportWalletCSV(w http.ResponseWriter, r *http.Request) {
	text, err := readCSVBody(r)
	if err != nil {
		handleError(w, err)
		return
	}

	result, err := h.importService.ImportTickets(text)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func serveTemplate(w http.ResponseWriter, filename, content string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment;filename=%s", filename))
	_, _ = w.Write([]byte(content))
}

func (h *Handlers) DownloadItineraryTemplate(w http.ResponseWriter, r *http.Request) {
	filename, content := services.ItineraryTemplate()
	serveTemplate(w, filename, content)
}

func (h *Handlers) DownloadWalletTemplate(w http.ResponseWriter, r *http.Request) {
	filename, content := services.WalletTemplate()
	serveTemplate(w, filename, content)
}

func (h *Handlers) ExportItineraryCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment;filename=itinerary_export.csv")

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Date", "Time", "Title", "Description", "Type", "Cost", "Address"}); err != nil {
		handleError(w, apperrors.InternalError(err))
		return
	}

	for _, a := range h.itineraryService.List() {
		record := []string{
			a.Date,
			a.Time,
			a.Title,
			a.Description,
			string(a.Type),
			strconv.FormatFloat(a.PriceEstimate, 'f', -1, 64),
			a.Address,
		}
		if err := writer.Write(record); err != nil {
			handleError(w, apperrors.InternalError(err))
			return
		}
	}
}

func (h *Handlers) ExportWalletCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment;filename=wallet_export.csv")

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Type", "Title", "Date", "Details", "Notes"}); err != nil {
		handleError(w, apperrors.InternalError(err))
		return
	}

	for _, t := range h.walletService.List() {
		record := []string{string(t.Type), t.Title, t.Date, t.Details, t.Notes}
		if err := writer.Write(record); err != nil {
			handleError(w, apperrors.InternalError(err))
			return
		}
	}
}

func (h *Handlers) ExportExpensesCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment;filename=expenses_export.csv")

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Date", "Description", "Category", "Amount", "Currency"}); err != nil {
		handleError(w, apperrors.InternalError(err))
		return
	}

	for _, e := range h.expenseService.List() {
		record := []string{
			e.Date,
			e.Description,
			string(e.Category),
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			string(e.Currency),
		}
		if err := writer.Write(record); err != nil {
			handleError(w, apperrors.InternalError(err))
			return
		}
	}
}
