package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ordash/ordash/internal/config"
	"github.com/ordash/ordash/internal/models"
	"github.com/ordash/ordash/internal/services/breakeven"
	"github.com/ordash/ordash/internal/services/inventory"
	"github.com/ordash/ordash/internal/services/production"
	"github.com/ordash/ordash/internal/services/queueing"
	"github.com/ordash/ordash/internal/tui/components"
	bepviews "github.com/ordash/ordash/internal/tui/views/breakeven"
	eoqviews "github.com/ordash/ordash/internal/tui/views/inventory"
	prodviews "github.com/ordash/ordash/internal/tui/views/production"
	queueviews "github.com/ordash/ordash/internal/tui/views/queueing"
	"github.com/ordash/ordash/internal/util"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// MaxContentWidth is the maximum width for content display
const MaxContentWidth = 140

// chromeLines counts header, separator, mode bar, alert bar, footer separator and help.
const chromeLines = 6

// Module represents a view module in the application.
type Module string

const (
	ModuleQueue      Module = Module(models.ModeQueue)
	ModuleEOQ        Module = Module(models.ModeEOQ)
	ModuleProduction Module = Module(models.ModeProduction)
	ModuleBreakEven  Module = Module(models.ModeBreakEven)
	ModuleHelp       Module = "help"
)

// calculator is the surface every calculator view offers the app.
type calculator interface {
	Title() string
	Reset()
	HandleKey(key string)
	Diagnostic() string
	Render(width, height int) string
}

// App is the main Bubble Tea application model.
type App struct {
	config    *config.Config
	logger    *slog.Logger
	sessionID string

	// Views
	queueView      *queueviews.View
	eoqView        *eoqviews.View
	productionView *prodviews.View
	breakEvenView  *bepviews.View
	views          map[Module]calculator

	// UI state
	theme       *Theme
	keys        KeyMap
	width       int
	height      int
	ready       bool
	quitting    bool
	showConfirm bool

	currentModule  Module
	previousModule Module
}

// New creates a new App from the configuration. Services and views take
// their defaults, sweep resolutions and solver from cfg.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	start := models.ModeQueue
	if cfg.Display.StartMode != "" {
		m, err := models.ParseMode(cfg.Display.StartMode)
		if err != nil {
			return nil, fmt.Errorf("display.start_mode: %w", err)
		}
		start = m
	}

	solver, err := production.NewSolver(cfg.Production.Solver)
	if err != nil {
		return nil, fmt.Errorf("production.solver: %w", err)
	}

	sessionID := util.NewID()
	logger = logger.With("session", sessionID)

	theme := NewTheme(cfg.Display.ColorScheme)
	display := components.Display{
		Currency:    cfg.Display.Currency,
		Unit:        cfg.Display.UnitLabel,
		ChartWidth:  cfg.Display.ChartWidth,
		ChartHeight: cfg.Display.ChartHeight,
		Styles:      theme.Components(),
	}

	p := cfg.Production
	a := &App{
		config:    cfg,
		logger:    logger,
		sessionID: sessionID,
		queueView: queueviews.NewView(
			queueing.NewService(cfg.Queueing.CurvePoints, logger),
			cfg.Queueing.QueueParams(), display),
		eoqView: eoqviews.NewView(
			inventory.NewService(cfg.Inventory.SweepPoints, logger),
			cfg.Inventory.EOQParams(), display),
		productionView: prodviews.NewView(
			production.NewService(solver, logger),
			prodviews.Defaults{
				Params: p.ProductionParams(),
				Fixed:  models.FixedProfit{Premium: p.PremiumProfit, Medium: p.MediumProfit},
				Priced: models.PriceMinusCost{
					PremiumPrice: p.PremiumPrice,
					PremiumCost:  p.PremiumCost,
					MediumPrice:  p.MediumPrice,
					MediumCost:   p.MediumCost,
				},
			}, display),
		breakEvenView: bepviews.NewView(
			breakeven.NewService(cfg.BreakEven.Rounding, cfg.BreakEven.CurvePoints, logger),
			cfg.BreakEven.BreakEvenParams(), display),
		theme:         theme,
		keys:          DefaultKeyMap(),
		currentModule: Module(start),
	}
	a.views = map[Module]calculator{
		ModuleQueue:      a.queueView,
		ModuleEOQ:        a.eoqView,
		ModuleProduction: a.productionView,
		ModuleBreakEven:  a.breakEvenView,
	}

	logger.Info("dashboard ready", "start_mode", start, "solver", solver.Name())
	return a, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("ordash")
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil
	}

	return a, nil
}

// handleKeyPress processes key press events.
func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle quit confirmation first (modal takes priority)
	if a.showConfirm {
		switch msg.String() {
		case "y", "Y", "enter":
			a.quitting = true
			return a, tea.Quit
		case "n", "N", "esc":
			a.showConfirm = false
		}
		return a, nil
	}

	if a.keys.IsQuit(msg) {
		a.showConfirm = true
		return a, nil
	}

	// Function key navigation (always available)
	if a.keys.IsFunctionKey(msg) {
		a.switchTo(a.keys.FunctionKeyModule(msg))
		return a, nil
	}

	if a.keys.Back.Matches(msg) {
		if a.currentModule == ModuleHelp && a.previousModule != "" {
			a.currentModule = a.previousModule
			a.previousModule = ""
		}
		return a, nil
	}

	view := a.activeView()
	if view == nil {
		return a, nil
	}

	if a.keys.Reset.Matches(msg) {
		view.Reset()
		a.logger.Debug("form reset", "mode", a.currentModule)
		return a, nil
	}

	view.HandleKey(msg.String())
	return a, nil
}

// switchTo makes module the active view. Help remembers the calculator it
// was opened from.
func (a *App) switchTo(module Module) {
	switch {
	case module == "" || module == a.currentModule:
		return
	case module == ModuleHelp:
		a.previousModule = a.currentModule
	default:
		a.previousModule = ""
	}
	a.currentModule = module
	a.logger.Debug("mode selected", "mode", module)
}

// activeView returns the current calculator, or nil on the help screen.
func (a *App) activeView() calculator {
	return a.views[a.currentModule]
}

// CurrentModule returns the active module.
func (a *App) CurrentModule() Module {
	return a.currentModule
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	if a.quitting {
		return a.theme.Title.Render("ordash shutting down...")
	}

	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.renderModeBar())
	b.WriteString("\n")
	b.WriteString(a.renderAlertBar())
	b.WriteString("\n")

	contentHeight := ContentHeight(a.height, chromeLines)
	if a.showConfirm {
		b.WriteString(a.renderConfirmDialog(contentHeight))
	} else {
		b.WriteString(a.renderContent(contentHeight))
	}

	b.WriteString("\n")
	b.WriteString(a.renderFooter())

	return b.String()
}

// renderHeader renders the top header bar.
func (a *App) renderHeader() string {
	title := fmt.Sprintf("ORDASH OPERATIONS RESEARCH DASHBOARD v%s", Version)
	info := fmt.Sprintf("%s | SESSION %s", a.moduleTitle(a.currentModule), util.ShortID(a.sessionID))

	if GetBreakpoint(a.width) == BreakpointNarrow {
		title = "ORDASH"
	}
	info = Truncate(info, max(a.width-lipgloss.Width(title)-4, 0))

	spacing := a.width - lipgloss.Width(title) - lipgloss.Width(info) - 4
	if spacing < 1 {
		spacing = 1
	}

	header := a.theme.Header.Render(title) +
		strings.Repeat(" ", spacing) +
		a.theme.Header.Render(info)

	return header + "\n" + a.theme.DrawDoubleLine(a.width)
}

// renderModeBar renders the calculator selector with the active mode highlighted.
func (a *App) renderModeBar() string {
	narrow := GetBreakpoint(a.width) == BreakpointNarrow
	keys := []string{"F2", "F3", "F4", "F5"}

	var tabs []string
	for i, mode := range models.Modes() {
		label := keys[i] + " " + mode.Title()
		if narrow {
			label = keys[i] + " " + string(mode)
		}
		if Module(mode) == a.currentModule {
			tabs = append(tabs, a.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, a.theme.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderAlertBar shows the diagnostic of the active calculator.
func (a *App) renderAlertBar() string {
	view := a.activeView()
	if view == nil {
		return a.theme.Muted.Render("Esc returns to " + a.moduleTitle(a.previousModule))
	}
	if d := view.Diagnostic(); d != "" {
		return a.theme.AlertWarn.Render("WARNING: " + Truncate(d, max(a.width-9, 0)))
	}
	return a.theme.Alert.Render("OK") + a.theme.StatusDivider.Render() +
		a.theme.Muted.Render("Results are up to date")
}

// renderContent renders the main content area based on current module.
func (a *App) renderContent(height int) string {
	contentWidth := ContentWidth(a.width, 40, MaxContentWidth)

	var content string
	if view := a.activeView(); view != nil {
		content = view.Render(contentWidth, height)
	} else {
		content = a.renderHelp(contentWidth)
	}

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		MaxHeight(height).
		Align(lipgloss.Center, lipgloss.Top)

	return style.Render(lipgloss.NewStyle().Width(contentWidth).Render(content))
}

// renderHelp renders the help screen.
func (a *App) renderHelp(width int) string {
	var keys strings.Builder
	navItems := [][2]string{
		{"F1", "Help"},
		{"F2", models.ModeQueue.Title()},
		{"F3", models.ModeEOQ.Title()},
		{"F4", models.ModeProduction.Title()},
		{"F5", models.ModeBreakEven.Title()},
		{"F10/q", "Quit"},
		{"Tab/Down", "Next field"},
		{"S-Tab/Up", "Previous field"},
		{"Left/Right", "Change selection"},
		{"Enter", "Next field, optimize on last"},
		{"Ctrl+S", "Optimize production"},
		{"Ctrl+R", "Reset form to defaults"},
		{"Esc", "Back"},
	}
	for i, item := range navItems {
		keys.WriteString(a.theme.Primary.Render(fmt.Sprintf("%-10s  %s", item[0], item[1])))
		if i < len(navItems)-1 {
			keys.WriteString("\n")
		}
	}

	formulas := strings.Join([]string{
		"M/M/1:  ρ = λ/μ   L = λ/(μ−λ)",
		"        Lq = λ²/(μ(μ−λ))",
		"        W = 1/(μ−λ)   Wq = λ/(μ(μ−λ))",
		"EOQ:    Q* = √(2DS/H)",
		"LP:     max p·x + m·y",
		"        a·x + b·y ≤ supply",
		"        x ≥ share·supply/a,  y ≥ 0",
		"BEP:    units = F/(p − v)",
	}, "\n")

	panelWidth := 46
	if width < 2*panelWidth+2 {
		panelWidth = width
	}
	body := SideBySide(
		a.theme.Panel("KEYS", keys.String(), panelWidth),
		a.theme.Panel("FORMULAS", a.theme.Value.Render(formulas), panelWidth),
		width, 2)

	return a.theme.Title.Render("=== HELP ===") + "\n\n" + body + "\n\n" +
		a.theme.Muted.Render("Press Esc to return")
}

// renderConfirmDialog renders the quit confirmation dialog.
func (a *App) renderConfirmDialog(height int) string {
	dialog := a.theme.Box.Render(
		a.theme.Title.Render("CONFIRM EXIT") + "\n\n" +
			a.theme.Base.Render("Are you sure you want to exit?") + "\n\n" +
			a.theme.Label.Render("[Y]es  [N]o"),
	)

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return style.Render(dialog)
}

// renderFooter renders the bottom status bar.
func (a *App) renderFooter() string {
	help := Truncate(a.keys.StatusBarHelp(), max(a.width-2, 0))
	return a.theme.DrawHorizontalLine(a.width) + "\n" + a.theme.Footer.Render(help)
}

func (a *App) moduleTitle(m Module) string {
	if m == ModuleHelp {
		return "Help"
	}
	return models.Mode(m).Title()
}

// Run starts the TUI application.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	app, err := New(cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Handle context cancellation
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, err = p.Run()
	return err
}
