package app

import (
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"yashubustudio/sieve/internal/logging"
	"yashubustudio/sieve/sieve"
)

const (
	fyneAppID  = "studio.yashubu.sieve"
	configFile = "config.json"
)

// Run initializes required resources and starts the desktop UI.
func Run() error {
	cfg, err := sieve.LoadConfig(configFile)
	if err != nil {
		return err
	}

	pane := newLogPane(binding.NewString())
	defer pane.Stop()
	logger := logging.New(cfg.LogLevel, os.Stderr, pane)
	defer func() { _ = logger.Sync() }()

	ensureConfigFile(configFile, cfg, logger)
	ensureKnowledgeFile(cfg.KnowledgePath, sieve.DefaultKnowledgeBase(), logger)

	a := fyneapp.NewWithID(fyneAppID)
	kb, fromFile, err := sieve.LoadKnowledge(cfg)
	if err != nil {
		logger.Error("knowledge unavailable", zap.Error(err))
		showFatalError(a, err)
		return err
	}
	source := ""
	if fromFile {
		source = cfg.KnowledgePath
	}
	logger.Info("knowledge ready", zap.String("source", source), zap.Int("symptoms", len(kb.Symptoms())))

	svc, err := sieve.NewService(kb, logger)
	if err != nil {
		return err
	}
	bundle, err := newBundle()
	if err != nil {
		return err
	}

	u := buildUI(a, svc, uiOptions{
		Config:          cfg,
		Messages:        newMessages(bundle, preferredLanguages(cfg.Language, nil)...),
		Logger:          logger,
		LogPane:         pane,
		KnowledgeSource: source,
	})
	u.w.ShowAndRun()
	return nil
}

// showFatalError blocks on a window that only reports err.
func showFatalError(a fyne.App, err error) {
	w := a.NewWindow("Symptom Sieve")
	lbl := widget.NewLabel(err.Error())
	lbl.Wrapping = fyne.TextWrapWord
	w.SetContent(lbl)
	w.Resize(fyne.NewSize(520, 160))
	dialog.ShowError(err, w)
	w.ShowAndRun()
}
