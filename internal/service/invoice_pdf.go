package service

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"rental-management-backend/internal/database/models"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	pdfMargin     = 56.7
	pdfLabelWidth = 142
	pdfFontFamily = "invoice"
)

// InvoiceDocument is a rendered invoice ready for download
type InvoiceDocument struct {
	Filename string
	Content  []byte
}

// PDFFonts points at TrueType files used for invoice PDFs; empty paths fall back to Helvetica
type PDFFonts struct {
	Regular string
	Bold    string
}

var pdfLineLabels = map[string]string{
	"rent":        "Tiền phòng",
	"electricity": "Tiền điện",
	"water":       "Tiền nước",
	"internet":    "Internet",
	"cleaning":    "Vệ sinh",
	"service":     "Dịch vụ khác",
	"adjustment":  "Điều chỉnh",
	"deposit":     "Tiền cọc",
}

// SetPDFFonts sets the fonts embedded in rendered invoices
func (s *InvoiceService) SetPDFFonts(fonts PDFFonts) { s.fonts = fonts }

// PDF renders a visible invoice as a single-page summary
func (s *InvoiceService) PDF(ctx context.Context, actor *models.User, id uuid.UUID) (*InvoiceDocument, error) {
	inv, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	content, err := renderInvoice(inv, s.fonts)
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return &InvoiceDocument{
		Filename: fmt.Sprintf("Hoa-don-%s-%s.pdf", inv.Period, inv.ID.String()[:8]),
		Content:  content,
	}, nil
}

// invoiceWriter wraps an fpdf document with the family and text encoding in use
type invoiceWriter struct {
	doc    *fpdf.Fpdf
	family string
	text   func(string) string
}

func newInvoiceWriter(fonts PDFFonts) (*invoiceWriter, error) {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(true, pdfMargin)
	doc.SetCreator("Rental Management", true)

	w := &invoiceWriter{doc: doc, family: "Helvetica", text: foldASCII}
	if fonts.Regular != "" {
		regular, err := os.ReadFile(fonts.Regular)
		if err != nil {
			return nil, fmt.Errorf("failed to read PDF font: %w", err)
		}
		bold := regular
		if fonts.Bold != "" {
			if bold, err = os.ReadFile(fonts.Bold); err != nil {
				return nil, fmt.Errorf("failed to read PDF bold font: %w", err)
			}
		}
		doc.AddUTF8FontFromBytes(pdfFontFamily, "", regular)
		doc.AddUTF8FontFromBytes(pdfFontFamily, "B", bold)
		w.family = pdfFontFamily
		w.text = func(s string) string { return s }
	}
	doc.AddPage()
	return w, nil
}

func (w *invoiceWriter) heading(size float64, s string) {
	w.doc.SetFont(w.family, "B", size)
	w.doc.CellFormat(0, size+8, w.text(s), "", 1, "L", false, 0, "")
}

func (w *invoiceWriter) keyValues(rows [][2]string) {
	w.doc.SetFont(w.family, "", 10)
	for _, row := range rows {
		w.doc.CellFormat(pdfLabelWidth, 18, w.text(row[0]), "", 0, "L", false, 0, "")
		w.doc.CellFormat(0, 18, w.text(row[1]), "", 1, "L", false, 0, "")
	}
}

func (w *invoiceWriter) row(style string, size, height float64, border string, widths []float64, cells ...string) {
	w.doc.SetFont(w.family, style, size)
	for i, cell := range cells {
		align, ln := "R", 0
		if i == 0 {
			align = "L"
		}
		if i == len(cells)-1 {
			ln = 1
		}
		w.doc.CellFormat(widths[i], height, w.text(cell), border, ln, align, false, 0, "")
	}
}

func (w *invoiceWriter) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderInvoice(inv *InvoiceResponse, fonts PDFFonts) ([]byte, error) {
	w, err := newInvoiceWriter(fonts)
	if err != nil {
		return nil, err
	}
	pageWidth, _ := w.doc.GetPageSize()
	content := pageWidth - 2*pdfMargin

	w.heading(20, "HÓA ĐƠN THANH TOÁN")
	w.doc.Ln(12)

	rows := [][2]string{
		{"Kỳ thanh toán:", inv.Period},
		{"Mã hóa đơn:", strings.ToUpper(inv.ID.String()[:8])},
		{"Ngày tạo:", inv.CreatedAt.Format("02/01/2006")},
	}
	if inv.DueDate != nil {
		rows = append(rows, [2]string{"Hạn thanh toán:", displayDate(*inv.DueDate)})
	}
	rows = append(rows, [2]string{"Trạng thái:", inv.StatusDisplay})
	w.keyValues(rows)

	if d := inv.TenancyDetail; d != nil {
		w.doc.Ln(12)
		w.heading(14, "THÔNG TIN KHÁCH THUÊ")
		var tenant [][2]string
		if d.Tenant != nil {
			tenant = append(tenant, [2]string{"Họ và tên:", d.Tenant.FullName}, [2]string{"Email:", d.Tenant.Email})
			if d.Tenant.Phone != nil {
				tenant = append(tenant, [2]string{"Số điện thoại:", *d.Tenant.Phone})
			}
		}
		if d.Property != nil && d.Room != nil {
			tenant = append(tenant,
				[2]string{"Địa chỉ:", d.Property.Name + " - Phòng " + d.Room.RoomNumber},
				[2]string{"", d.Property.Address})
		}
		w.keyValues(tenant)
	}

	w.doc.Ln(12)
	w.heading(14, "CHI TIẾT HÓA ĐƠN")
	widths := []float64{200, 90, 95, content - 385}
	w.row("B", 10, 20, "B", widths, "Khoản mục", "Số lượng", "Đơn giá", "Thành tiền")
	for _, line := range inv.Lines {
		label, ok := pdfLineLabels[string(line.ItemType)]
		if !ok {
			label = string(line.ItemType)
		}
		w.row("", 9, 16, "", widths, label, thousands(line.Quantity), thousands(line.UnitPrice)+"đ", thousands(line.Amount)+"đ")
	}
	w.doc.Line(pdfMargin, w.doc.GetY()+2, pdfMargin+content, w.doc.GetY()+2)
	w.doc.Ln(10)

	summary := [][2]string{{"Tổng cộng:", thousands(inv.TotalAmount) + "đ"}}
	if inv.TotalPaid > 0 {
		summary = append(summary, [2]string{"Đã thanh toán:", thousands(inv.TotalPaid) + "đ"})
	}
	summary = append(summary, [2]string{"Còn lại:", thousands(inv.AmountDue) + "đ"})
	for _, row := range summary {
		w.doc.SetFont(w.family, "", 10)
		w.doc.CellFormat(content-150, 18, w.text(row[0]), "", 0, "R", false, 0, "")
		w.doc.SetFont(w.family, "B", 11)
		w.doc.CellFormat(150, 18, w.text(row[1]), "", 1, "R", false, 0, "")
	}

	if inv.Notes != "" {
		w.doc.Ln(12)
		w.heading(14, "Ghi chú:")
		w.doc.SetFont(w.family, "", 10)
		w.doc.MultiCell(0, 14, w.text(inv.Notes), "", "L", false)
	}
	return w.bytes()
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldASCII folds accented Latin text (including Vietnamese) onto ASCII for the built-in fonts
func foldASCII(s string) string {
	s = strings.NewReplacer("đ", "d", "Đ", "D").Replace(s)
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range folded {
		switch {
		case r == '\t':
			b.WriteByte(' ')
		case r < 0x80:
			b.WriteRune(r)
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

// displayDate turns YYYY-MM-DD into DD/MM/YYYY
func displayDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// thousands formats a whole amount with comma separators
func thousands(v float64) string {
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + b.String()
}
