package report

// renderer.go — paginated shift report PDF built with go-pdf/fpdf.
// Each page carries a header block (logo, subject identity, generation date,
// column titles) and a footer with the page number. Rows flow over a fixed
// printable bound; crossing it closes the page and redraws the header on the
// next one. The grand total accumulates across page breaks.

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// Subject identifies who the report is for.
type Subject struct {
	Name       string
	Phone      string
	PersonalID string // empty = not printed
}

// Row is one shift with its associations denormalized for printing.
type Row struct {
	WorkerName  string // printed only with the worker column
	CompanyName string
	WorkType    string
	StartHour   string
	EndHour     string
	Date        time.Time
}

// Options control layout and assets for a single render.
type Options struct {
	Hebrew bool
	// WorkerColumn adds a per-row worker name. Single-subject reports leave
	// it off (the worker is in the header); multi-worker reports need it to
	// attribute each row.
	WorkerColumn   bool
	LogoPath       string // skipped when missing on disk
	HebrewFontPath string // TTF registered for Hebrew mode; empty = core font
	Now            time.Time
}

// Renderer draws reports. The shaper owns all bidirectional-text handling;
// the layout logic below never reorders text.
type Renderer struct {
	shaper TextShaper
}

func NewRenderer(shaper TextShaper) *Renderer { return &Renderer{shaper: shaper} }

// Page geometry in millimeters (A4 portrait, 10mm side margins).
const (
	marginX    = 10.0
	contentW   = 190.0
	headerRule = 38.0
	titleY     = 42.0
	firstRowY  = 50.0
	rowH       = 7.0
	// Rows past this bound trigger a page break; the grand total needs a
	// little more headroom so it breaks slightly earlier.
	rowBound   = 270.0
	totalBound = 260.0
	footerY    = 285.0
)

type column struct {
	title string
	width float64
}

// columnsFor picks the table layout. Column widths always sum to contentW;
// the worker column squeezes the others to make room.
func columnsFor(withWorker bool) []column {
	if withWorker {
		return []column{
			{"Worker", 30},
			{"Company Name", 35},
			{"Work Type", 25},
			{"Start Hour", 20},
			{"End Hour", 20},
			{"Date", 30},
			{"Total Hours", 30},
		}
	}
	return []column{
		{"Company Name", 45},
		{"Work Type", 35},
		{"Start Hour", 25},
		{"End Hour", 25},
		{"Date", 30},
		{"Total Hours", 30},
	}
}

// Pagination states: a row either fits on the current page or forces a
// break that resets the cursor below a fresh header.
type pageState int

const (
	withinPage pageState = iota
	pageBreak
)

// Render produces the PDF byte stream for a subject and its ordered rows.
func (r *Renderer) Render(subject Subject, rows []Row, opts Options) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginX, 10, marginX)
	pdf.SetAutoPageBreak(false, 0)

	font := "Helvetica"
	if opts.Hebrew && opts.HebrewFontPath != "" {
		pdf.AddUTF8Font("shiftsheb", "", opts.HebrewFontPath)
		font = "shiftsheb"
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	cols := columnsFor(opts.WorkerColumn)
	if opts.Hebrew {
		// Mirror the visual column order for right-to-left reading.
		for i, j := 0, len(cols)-1; i < j; i, j = i+1, j-1 {
			cols[i], cols[j] = cols[j], cols[i]
		}
	}

	page := 1
	header := func() {
		r.drawHeader(pdf, font, subject, now, cols, opts)
	}
	footer := func() {
		pdf.SetFont(font, "", 10)
		pdf.SetXY(marginX, footerY)
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Page %d", page), "", 0, "C", false, 0, "")
		page++
	}

	pdf.AddPage()
	header()

	total := decimal.Zero
	y := firstRowY
	state := withinPage

	for _, row := range rows {
		if y > rowBound {
			state = pageBreak
		}
		if state == pageBreak {
			footer()
			pdf.AddPage()
			header()
			y = firstRowY
			state = withinPage
		}

		worked := WorkedDuration(row.StartHour, row.EndHour)
		total = total.Add(DurationHours(worked))
		r.drawRow(pdf, font, cols, y, row, worked)
		y += rowH
	}

	// Grand total line; force one last break when too close to the bottom.
	if y > totalBound {
		footer()
		pdf.AddPage()
		header()
		y = firstRowY
	}
	pdf.SetFont(font, "B", 12)
	pdf.SetXY(marginX, y+4)
	totalLine := r.shaper.Shape("Total Hours") + ": " + FormatHours(total)
	align := "L"
	if opts.Hebrew {
		align = "R"
	}
	pdf.CellFormat(contentW, 8, totalLine, "", 0, align, false, 0, "")

	footer()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawHeader(pdf *fpdf.Fpdf, font string, subject Subject, now time.Time, cols []column, opts Options) {
	// Identity block sits opposite the logo; both swap sides in Hebrew mode.
	identityAlign := "R"
	logoX := marginX
	if opts.Hebrew {
		identityAlign = "L"
		logoX = marginX + contentW - 60
	}

	if opts.LogoPath != "" {
		if _, err := os.Stat(opts.LogoPath); err == nil {
			pdf.ImageOptions(opts.LogoPath, logoX, 12, 60, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}

	pdf.SetFont(font, "", 12)
	pdf.SetXY(marginX, 12)
	pdf.CellFormat(contentW, 6, r.shaper.Shape(subject.Name), "", 0, identityAlign, false, 0, "")
	pdf.SetXY(marginX, 19)
	pdf.CellFormat(contentW, 6, subject.Phone, "", 0, identityAlign, false, 0, "")
	if subject.PersonalID != "" {
		pdf.SetXY(marginX, 26)
		pdf.CellFormat(contentW, 6, subject.PersonalID, "", 0, identityAlign, false, 0, "")
	}

	pdf.SetFont(font, "", 14)
	pdf.SetXY(marginX, 32)
	pdf.CellFormat(contentW, 6, now.Format("02/01/2006"), "", 0, identityAlign, false, 0, "")

	pdf.SetLineWidth(0.6)
	pdf.Line(marginX, headerRule, marginX+contentW, headerRule)

	pdf.SetFont(font, "", 10)
	x := marginX
	for _, col := range cols {
		pdf.SetXY(x, titleY)
		pdf.CellFormat(col.width, 5, r.shaper.Shape(col.title), "", 0, "L", false, 0, "")
		x += col.width
	}
}

func (r *Renderer) drawRow(pdf *fpdf.Fpdf, font string, cols []column, y float64, row Row, worked string) {
	workType := row.WorkType
	if workType == "" {
		workType = "No work"
	}
	worker := row.WorkerName
	if worker == "" {
		worker = "Unassigned"
	}
	values := map[string]string{
		"Worker":       r.shaper.Shape(worker),
		"Company Name": r.shaper.Shape(row.CompanyName),
		"Work Type":    r.shaper.Shape(workType),
		"Start Hour":   orNA(row.StartHour),
		"End Hour":     orNA(row.EndHour),
		"Date":         row.Date.Format("02/01/2006"),
		"Total Hours":  worked,
	}

	pdf.SetFont(font, "", 10)
	x := marginX
	for _, col := range cols {
		pdf.SetXY(x, y)
		pdf.CellFormat(col.width, 5, values[col.title], "", 0, "L", false, 0, "")
		x += col.width
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
