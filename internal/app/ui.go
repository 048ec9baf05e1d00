package app

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"yashubustudio/sieve/sieve"
)

var chipSize = fyne.NewSize(170, 36)

type uiOptions struct {
	Config   sieve.Config
	Messages *messages
	Logger   *zap.Logger
	LogPane  *logPane
	// KnowledgeSource names the loaded knowledge file; empty means the
	// built-in table.
	KnowledgeSource string
}

type uiState struct {
	app     fyne.App
	service *sieve.Service
	cfg     sieve.Config
	msg     *messages
	logger  *zap.Logger
	logPane *logPane

	w                  fyne.Window
	tokens             []*symptomToken
	dropArea           *fyne.Container
	zoneBg             *canvas.Rectangle
	chips              *fyne.Container
	canvasPlaceholder  *widget.Label
	results            *fyne.Container
	resultsPlaceholder *widget.Label
	summary            *widget.Label
	log                *widget.Entry

	resetBtn  *widget.Button
	exportBtn *widget.Button
}

func buildUI(a fyne.App, svc *sieve.Service, opts uiOptions) *uiState {
	u := &uiState{
		app:     a,
		service: svc,
		cfg:     opts.Config,
		msg:     opts.Messages,
		logger:  opts.Logger,
		logPane: opts.LogPane,
	}
	if u.logger == nil {
		u.logger = zap.NewNop()
	}
	u.cfg.ApplyDefaults()
	u.w = a.NewWindow(u.msg.T("WindowTitle"))

	kb := svc.Knowledge()
	paletteItems := make([]fyne.CanvasObject, 0, len(kb.Symptoms()))
	for _, sym := range kb.Symptoms() {
		tok := newSymptomToken(sym, func(s sieve.Symptom) { u.addSymptom(string(s)) }, u.dropAt, u.setDropHighlight)
		u.tokens = append(u.tokens, tok)
		paletteItems = append(paletteItems, tok)
	}
	hint := widget.NewLabel(u.msg.T("PaletteHint"))
	hint.Wrapping = fyne.TextWrapWord
	left := container.NewBorder(
		container.NewVBox(heading(u.msg.T("PaletteHeading")), hint),
		nil, nil, nil,
		container.NewVScroll(container.NewVBox(paletteItems...)),
	)

	u.zoneBg = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	u.zoneBg.CornerRadius = theme.InputRadiusSize()
	u.zoneBg.StrokeWidth = 2
	u.zoneBg.StrokeColor = theme.Color(theme.ColorNameInputBorder)
	u.canvasPlaceholder = widget.NewLabelWithStyle(u.msg.T("CanvasPlaceholder"), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	u.chips = container.NewGridWrap(chipSize)
	zoneMin := canvas.NewRectangle(color.Transparent)
	zoneMin.SetMinSize(fyne.NewSize(0, 120))
	u.dropArea = container.NewStack(zoneMin, u.zoneBg, container.NewPadded(container.NewVBox(u.canvasPlaceholder, u.chips)))

	u.resetBtn = widget.NewButtonWithIcon(u.msg.T("ResetButton"), theme.ContentClearIcon(), func() { u.onReset() })
	u.exportBtn = widget.NewButtonWithIcon(u.msg.T("ExportButton"), theme.DocumentSaveIcon(), func() { u.onExport() })
	source := opts.KnowledgeSource
	if source == "" {
		source = u.msg.T("BuiltInSource")
	}
	u.summary = widget.NewLabel(u.msg.N("KnowledgeSummary", len(kb.Symptoms()), map[string]any{
		"Source": source,
		"Count":  len(kb.Symptoms()),
	}))

	canvasSection := container.NewVBox(
		container.NewBorder(nil, nil, heading(u.msg.T("CanvasHeading")), container.NewHBox(u.resetBtn, u.exportBtn)),
		u.dropArea,
		widget.NewSeparator(),
		heading(u.msg.T("ResultsHeading")),
	)

	u.resultsPlaceholder = widget.NewLabel(u.msg.T("ResultsPlaceholder"))
	u.resultsPlaceholder.Wrapping = fyne.TextWrapWord
	u.results = container.NewVBox(u.resultsPlaceholder)

	u.log = widget.NewEntryWithData(u.logPane.bind)
	u.log.MultiLine = true
	u.log.Wrapping = fyne.TextWrapWord
	u.log.SetMinRowsVisible(5)
	u.log.Disable()
	logSection := container.NewVBox(widget.NewSeparator(), heading(u.msg.T("LogHeading")), u.log, u.summary)

	right := container.NewBorder(canvasSection, logSection, nil, nil, container.NewVScroll(u.results))
	split := container.NewHSplit(left, right)
	split.Offset = 0.22

	u.w.SetContent(split)
	u.w.Resize(fyne.NewSize(u.cfg.Window.Width, u.cfg.Window.Height))
	u.refresh()
	return u
}

func heading(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

// addSymptom places a symptom on the canvas. Unknown labels are ignored.
func (u *uiState) addSymptom(label string) bool {
	_, added, err := u.service.AddSymptom(label)
	if err != nil || !added {
		return false
	}
	u.refresh()
	return true
}

// dropAt adds sym when pos, an absolute position, lies inside the drop zone.
func (u *uiState) dropAt(sym sieve.Symptom, pos fyne.Position) {
	origin := u.app.Driver().AbsolutePositionForObject(u.dropArea)
	if !pointInside(pos, origin, u.dropArea.Size()) {
		u.logger.Debug("drop outside canvas ignored", zap.String("symptom", string(sym)))
		return
	}
	u.addSymptom(string(sym))
}

func (u *uiState) setDropHighlight(active bool) {
	if active {
		u.zoneBg.StrokeColor = theme.Color(theme.ColorNamePrimary)
	} else {
		u.zoneBg.StrokeColor = theme.Color(theme.ColorNameInputBorder)
	}
	u.zoneBg.Refresh()
}

func (u *uiState) onReset() {
	u.service.ClearSelection()
	u.refresh()
}

// refresh rebuilds chips and result cards from the service state.
func (u *uiState) refresh() {
	selected := u.service.Selected()
	chips := make([]fyne.CanvasObject, 0, len(selected))
	for _, sym := range selected {
		chips = append(chips, newChip(string(sym)))
	}
	u.chips.Objects = chips
	u.chips.Refresh()
	if len(selected) == 0 {
		u.canvasPlaceholder.Show()
	} else {
		u.canvasPlaceholder.Hide()
	}

	views := u.service.Views()
	if len(views) == 0 {
		u.results.Objects = []fyne.CanvasObject{u.resultsPlaceholder}
	} else {
		cards := make([]fyne.CanvasObject, 0, len(views))
		for _, v := range views {
			cards = append(cards, u.viewCard(v))
		}
		u.results.Objects = cards
	}
	u.results.Refresh()
	if len(selected) == 0 {
		u.exportBtn.Disable()
	} else {
		u.exportBtn.Enable()
	}
}

func newChip(text string) fyne.CanvasObject {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameSelection))
	bg.CornerRadius = chipSize.Height / 2
	lbl := widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{})
	lbl.Truncation = fyne.TextTruncateEllipsis
	return container.NewStack(bg, lbl)
}

func (u *uiState) viewCard(v sieve.View) *widget.Card {
	rows := make([]fyne.CanvasObject, 0, len(v.Groups)*2)
	for _, g := range v.Groups {
		text := u.msg.T("NoneLabel")
		if len(g.Diagnoses) > 0 {
			text = strings.Join(g.Diagnoses, ", ")
		}
		items := widget.NewLabel(text)
		items.Wrapping = fyne.TextWrapWord
		rows = append(rows, heading(string(g.Category)), items)
	}
	return widget.NewCard(v.Title, "★ "+sieve.Badge, container.New(layout.NewFormLayout(), rows...))
}

func (u *uiState) onExport() {
	views := u.service.Views()
	if len(views) == 0 {
		dialog.ShowInformation(u.msg.T("InfoTitle"), u.msg.T("ExportEmpty"), u.w)
		return
	}
	fd := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, u.w)
			return
		}
		if uc == nil {
			return
		}
		defer uc.Close()
		if err := u.writeExport(uc, views); err != nil {
			dialog.ShowError(err, u.w)
			return
		}
		u.logger.Info("views exported", zap.String("uri", uc.URI().String()), zap.Int("views", len(views)))
	}, u.w)
	fd.SetFileName(fmt.Sprintf("sieve_%s.csv", time.Now().Format("20060102150405")))
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".csv"}))
	if loc := exportLocation(u.cfg.ExportDir); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (u *uiState) writeExport(w io.Writer, views []sieve.View) error {
	if err := sieve.WriteViewsCSV(w, views); err != nil {
		return fmt.Errorf("export views: %w", err)
	}
	return nil
}

// exportLocation returns the configured export directory when it exists.
func exportLocation(dir string) fyne.ListableURI {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return nil
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(abs))
	if err != nil {
		return nil
	}
	return lister
}
