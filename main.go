package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"dialogkit/dialog"
	"dialogkit/fyneui"
	"dialogkit/i18n"
	"dialogkit/internal/config"
	"dialogkit/internal/constants"
	customtheme "dialogkit/internal/theme"
)

// Global debug flag
var debugMode bool

// debugPrint prints debug messages only when debug mode is enabled
func debugPrint(format string, args ...interface{}) {
	if debugMode {
		log.Printf("DEBUG: "+format, args...)
	}
}

// request describes one dialog to show
type request struct {
	option   bool
	typ      dialog.Type
	modality dialog.Modality
	title    string
	text     string
}

// DialogApp is the demo application hosting the dialogs
type DialogApp struct {
	app     fyne.App
	window  fyne.Window
	display *fyneui.Display
	parent  *fyneui.Window
	config  *config.Config
	options []dialog.Option
	status  *widget.Label
}

// NewDialogApp creates the main window and the dialog options derived from cfg
func NewDialogApp(a fyne.App, cfg *config.Config, labels dialog.LabelProvider) *DialogApp {
	da := &DialogApp{
		app:     a,
		config:  cfg,
		display: fyneui.NewDisplay(a, debugPrint),
		status:  widget.NewLabel(""),
		options: []dialog.Option{
			dialog.WithLabels(labels),
			dialog.WithSize(cfg.Dialog.Width, cfg.Dialog.Height),
			dialog.WithDismissResult(cfg.Dialog.DismissResult),
			dialog.WithDebug(debugPrint),
		},
	}

	da.window = a.NewWindow(constants.ApplicationTitle)
	da.window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	da.parent = da.display.Wrap(da.window)
	return da
}

// buildMainWindow fills the main window with one button per dialog kind
func (da *DialogApp) buildMainWindow() {
	demos := []struct {
		caption string
		req     request
	}{
		{"Information", request{typ: dialog.TypeInfo, modality: dialog.ModalityPrimary, title: "Information", text: "The operation completed successfully."}},
		{"Warning", request{typ: dialog.TypeWarning, modality: dialog.ModalityPrimary, title: "Warning", text: "The disk is almost full."}},
		{"Error", request{typ: dialog.TypeError, modality: dialog.ModalityApplication, title: "Error", text: "The file could not be saved."}},
		{"Question", request{option: true, typ: dialog.TypeQuestion, modality: dialog.ModalityApplication, title: "Confirm", text: "Proceed?"}},
	}

	box := container.NewVBox()
	for _, demo := range demos {
		req := demo.req
		box.Add(widget.NewButton(demo.caption, func() {
			// dialogs block, so they never run on the Fyne goroutine
			go da.show(req)
		}))
	}
	box.Add(da.status)
	da.window.SetContent(container.NewPadded(box))
}

// show displays req and reports the outcome in the status line
func (da *DialogApp) show(req request) (bool, error) {
	var (
		result bool
		err    error
	)
	if req.option {
		result, err = dialog.ShowOption(da.parent, req.typ, req.title, req.text, req.modality, da.options...)
	} else {
		err = dialog.ShowMessage(da.parent, req.typ, req.title, req.text, req.modality, da.options...)
		result = err == nil
	}

	status := fmt.Sprintf("%s: %t", req.title, result)
	if err != nil {
		log.Printf("Error showing dialog: %v", err)
		status = fmt.Sprintf("%s: %v", req.title, err)
	}
	fyne.Do(func() { da.status.SetText(status) })
	return result, err
}

// newLabelProvider builds the caption source from the dialog configuration
func newLabelProvider(cfg config.DialogConfig, lang string) (dialog.LabelProvider, error) {
	languages := cfg.Languages
	if lang != "" {
		languages = strings.Split(lang, ",")
	}
	provider, err := i18n.NewProvider(debugPrint, languages...)
	if err != nil {
		return nil, err
	}
	for _, path := range cfg.MessageFiles {
		if err := provider.LoadMessageFile(path); err != nil {
			return nil, err
		}
	}
	debugPrint("Caption languages: %v", provider.Languages())

	return dialog.Override(provider, dialog.Labels{
		OK:  cfg.Labels.OK,
		Yes: cfg.Labels.Yes,
		No:  cfg.Labels.No,
	}), nil
}

func main() {
	// Parse command line flags
	var (
		configPath string
		lang       string
		typeName   string
		modeName   string
		title      string
		option     bool
		saveConfig bool
	)
	flag.BoolVar(&debugMode, "d", false, "Enable debug mode")
	flag.StringVar(&configPath, "config", "", "Configuration file path")
	flag.StringVar(&lang, "lang", "", "Comma separated caption languages")
	flag.StringVar(&typeName, "type", "", "Dialog type: none, info, warning, error or question")
	flag.StringVar(&modeName, "modality", "application", "Dialog modality: none, primary, application or system")
	flag.StringVar(&title, "title", constants.ApplicationTitle, "Dialog title")
	flag.BoolVar(&option, "option", false, "Ask a yes/no question instead of showing a message")
	flag.BoolVar(&saveConfig, "save-config", false, "Write the effective configuration and exit")
	flag.Parse()

	// Load configuration
	var configManager config.ManagerInterface = config.NewManager()
	if configPath != "" {
		configManager = config.NewManagerWithPath(configPath)
	}
	cfg, err := configManager.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	debugPrint("Configuration loaded from %s", configManager.Path())
	if saveConfig {
		if err := configManager.Save(cfg); err != nil {
			log.Fatalf("Error saving configuration: %v", err)
		}
		fmt.Println(configManager.Path())
		return
	}

	labels, err := newLabelProvider(cfg.Dialog, lang)
	if err != nil {
		log.Fatalf("Error loading captions: %v", err)
	}

	a := app.New()
	a.Settings().SetTheme(customtheme.NewDialogTheme(cfg.Theme))
	da := NewDialogApp(a, cfg, labels)

	// Without a message argument the main window offers every dialog kind
	if flag.NArg() == 0 {
		da.buildMainWindow()
		da.window.ShowAndRun()
		return
	}

	req := request{
		option: option,
		title:  title,
		text:   strings.Join(flag.Args(), " "),
		typ:    dialog.TypeInfo,
	}
	if option {
		req.typ = dialog.TypeQuestion
	}
	if typeName != "" {
		if req.typ, err = dialog.ParseType(typeName); err != nil {
			log.Fatalf("Invalid dialog type: %v", err)
		}
	}
	if req.modality, err = dialog.ParseModality(modeName); err != nil {
		log.Fatalf("Invalid modality: %v", err)
	}

	// Exit status: 0 for OK or Yes, 1 for No, 2 on error
	exitCode := 0
	a.Lifecycle().SetOnStarted(func() {
		go func() {
			result, err := da.show(req)
			switch {
			case err != nil:
				exitCode = 2
			case req.option && !result:
				exitCode = 1
			}
			if req.option && err == nil {
				answer := "no"
				if result {
					answer = "yes"
				}
				fmt.Println(answer)
			}
			fyne.Do(a.Quit)
		}()
	})
	da.window.SetContent(da.status)
	da.window.ShowAndRun()
	os.Exit(exitCode)
}
