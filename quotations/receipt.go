package quotations

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"eventforge/db"
	"eventforge/globals"
	"eventforge/models"
	"eventforge/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

func receiptSecret() []byte {
	if s := os.Getenv("RECEIPT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("receipt-signing-key")
}

// receiptPayload returns the signed QR string:
// quotationID|eventID|timestamp|signature
func receiptPayload(quotationID, eventID string) string {
	data := fmt.Sprintf("%s|%s|%d", quotationID, eventID, time.Now().Unix())

	h := hmac.New(sha256.New, receiptSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// PrintReceipt renders a PDF payment receipt for a completed, paid
// quotation. The owning vendor and admins may download it.
func PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	quotationID := ps.ByName("quotationid")
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	role, _ := r.Context().Value(globals.RoleKey).(string)

	var quotation models.Quotation
	err := db.QuotationsCollection.FindOne(context.TODO(), bson.M{"quotationid": quotationID}).Decode(&quotation)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Quotation not found")
		return
	}

	if role != models.RoleAdmin && quotation.VendorID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Not your quotation")
		return
	}

	if !quotation.Paid || quotation.VendorStatus != models.VendorCompleted {
		utils.RespondWithError(w, http.StatusBadRequest, "Receipt available only for completed, paid quotations")
		return
	}

	var event models.Event
	_ = db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": quotation.EventID}).Decode(&event)

	qrPNG, err := qrcode.Encode(receiptPayload(quotation.QuotationID, quotation.EventID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Payment Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Quotation: %s", quotation.QuotationID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Event: %s", event.Title))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Vendor: %s", quotation.VendorName))
	pdf.Ln(8)
	if quotation.Amount > 0 {
		pdf.Cell(0, 10, fmt.Sprintf("Amount: %.2f", quotation.Amount))
		pdf.Ln(8)
	}
	pdf.Cell(0, 10, "Status: completed, paid")
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+quotation.QuotationID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
