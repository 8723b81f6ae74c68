package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/ordash/ordash/internal/config"
	"github.com/ordash/ordash/internal/testutil"
	"github.com/ordash/ordash/internal/util"
)

func TestApp_InitialState(t *testing.T) {
	app := newTestApp(t)

	if app.currentModule != ModuleQueue {
		t.Errorf("expected initial module queue, got %s", app.currentModule)
	}
	if !app.ready {
		t.Error("expected app to be ready")
	}
	if app.quitting {
		t.Error("expected app not to be quitting")
	}
	if _, err := uuid.Parse(app.sessionID); err != nil {
		t.Errorf("session id %q is not a valid id", app.sessionID)
	}
}

func TestApp_StartMode(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) { c.Display.StartMode = "bep" })
	if app.CurrentModule() != ModuleBreakEven {
		t.Errorf("CurrentModule() = %s, want breakeven", app.CurrentModule())
	}

	app = newTestApp(t, func(c *config.Config) { c.Display.StartMode = "" })
	if app.CurrentModule() != ModuleQueue {
		t.Errorf("empty start mode: CurrentModule() = %s, want queue", app.CurrentModule())
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
		want   string
	}{
		{"unknown start mode", func(c *config.Config) { c.Display.StartMode = "simulation" }, "display.start_mode"},
		{"unknown solver", func(c *config.Config) { c.Production.Solver = "interior" }, "production.solver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.modify(cfg)
			_, err := New(cfg, testutil.DiscardLogger())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("New() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestApp_View_NotReady(t *testing.T) {
	app := newTestApp(t)
	app.ready = false

	output := app.View()
	if !strings.Contains(output, "Initializing") {
		t.Error("expected initialization message when not ready")
	}
}

func TestApp_View_Quitting(t *testing.T) {
	app := newTestApp(t)
	app.quitting = true

	output := app.View()
	if !strings.Contains(output, "shutting down") {
		t.Error("expected shutdown message when quitting")
	}
}

func TestApp_View_Chrome(t *testing.T) {
	app := newTestApp(t)
	output := app.View()

	for _, want := range []string{
		"ORDASH OPERATIONS RESEARCH DASHBOARD",
		"M/M/1 Queue | SESSION " + util.ShortID(app.sessionID),
		"F2 M/M/1 Queue",
		"F5 Break-Even Point",
		"Results are up to date",
		"M/M/1 QUEUE",
		"[F1]Help",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestApp_View_Narrow(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 50, Height: 30})

	output := app.View()
	if strings.Contains(output, "OPERATIONS RESEARCH DASHBOARD") {
		t.Error("narrow header should use the short title")
	}
	if !strings.Contains(output, "F2 queue") {
		t.Error("narrow mode bar should use short mode names")
	}
}

func TestApp_FunctionKeyNavigation(t *testing.T) {
	tests := []struct {
		key    tea.KeyType
		module Module
		title  string
	}{
		{tea.KeyF3, ModuleEOQ, "ECONOMIC ORDER QUANTITY"},
		{tea.KeyF4, ModuleProduction, "PRODUCTION OPTIMIZER"},
		{tea.KeyF5, ModuleBreakEven, "BREAK-EVEN POINT"},
		{tea.KeyF2, ModuleQueue, "M/M/1 QUEUE"},
		{tea.KeyF1, ModuleHelp, "=== HELP ==="},
	}

	app := newTestApp(t)
	for _, tt := range tests {
		app.Update(specialKeyMsg(tt.key))
		if app.currentModule != tt.module {
			t.Errorf("after %v: module = %s, want %s", tt.key, app.currentModule, tt.module)
		}
		if !strings.Contains(app.View(), tt.title) {
			t.Errorf("after %v: view missing %q", tt.key, tt.title)
		}
	}
}

func TestApp_HelpAndBack(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF4))
	app.Update(specialKeyMsg(tea.KeyF1))

	output := app.View()
	for _, want := range []string{"KEYS", "FORMULAS", "Q* = √(2DS/H)", "Esc returns to Production Optimizer"} {
		if !strings.Contains(output, want) {
			t.Errorf("help view missing %q", want)
		}
	}

	app.Update(specialKeyMsg(tea.KeyEscape))
	if app.currentModule != ModuleProduction {
		t.Errorf("Esc should return to production, got %s", app.currentModule)
	}
}

func TestApp_HelpIgnoresFormKeys(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF1))
	app.Update(keyMsg("9"))
	app.Update(specialKeyMsg(tea.KeyEscape))

	p, err := app.queueView.Params()
	if err != nil || p.ArrivalRate != 4 {
		t.Errorf("help screen should not forward keys: params = %+v, err = %v", p, err)
	}
}

func TestApp_QueueUnstableAlert(t *testing.T) {
	app := newTestApp(t)
	app.Update(keyMsg("0")) // arrival 4 -> 40

	if app.queueView.Metrics() != nil {
		t.Error("unstable queue should have no metrics")
	}
	output := app.View()
	if !strings.Contains(output, "WARNING: Queue is unstable") {
		t.Error("expected unstable queue warning in alert bar")
	}
	if strings.Contains(output, "Results are up to date") {
		t.Error("alert bar should not report up-to-date results")
	}
}

func TestApp_ResetForm(t *testing.T) {
	app := newTestApp(t)
	app.Update(keyMsg("0"))
	app.Update(specialKeyMsg(tea.KeyCtrlR))

	p, err := app.queueView.Params()
	if err != nil {
		t.Fatalf("Params() error = %v", err)
	}
	if p.ArrivalRate != 4 || p.ServiceRate != 6 {
		t.Errorf("after reset params = %+v, want {4 6}", p)
	}
	if app.queueView.Err() != nil {
		t.Errorf("after reset Err() = %v", app.queueView.Err())
	}
}

func TestApp_ProductionSubmit(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF4))

	if app.productionView.Plan() != nil {
		t.Fatal("production should not solve before submit")
	}
	app.Update(specialKeyMsg(tea.KeyCtrlS))

	plan := app.productionView.Plan()
	if plan == nil {
		t.Fatalf("Plan() = nil, Err() = %v", app.productionView.Err())
	}
	if math.Abs(plan.Profit-546666.67) > 0.01 {
		t.Errorf("Profit = %v, want 546666.67", plan.Profit)
	}
	if !strings.Contains(app.View(), "Maximum profit") {
		t.Error("expected plan table in view")
	}
}

func TestApp_ProductionVertexSolver(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) { c.Production.Solver = "vertex" })
	app.Update(specialKeyMsg(tea.KeyF4))
	app.Update(specialKeyMsg(tea.KeyCtrlS))

	plan := app.productionView.Plan()
	if plan == nil {
		t.Fatalf("Plan() = nil, Err() = %v", app.productionView.Err())
	}
	if plan.Solver != "vertex" {
		t.Errorf("Solver = %q, want vertex", plan.Solver)
	}
}

func TestApp_ProductionPricedDefaults(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) { c.Production.ProfitModel = "price_minus_cost" })
	app.Update(specialKeyMsg(tea.KeyF4))
	app.Update(specialKeyMsg(tea.KeyCtrlS))

	plan := app.productionView.Plan()
	if plan == nil {
		t.Fatalf("Plan() = nil, Err() = %v", app.productionView.Err())
	}
	if math.Abs(plan.Profit-50000000) > 0.01 {
		t.Errorf("Profit = %v, want 50,000,000", plan.Profit)
	}
}

func TestApp_ViewsKeepStateAcrossModes(t *testing.T) {
	app := newTestApp(t)
	app.Update(keyMsg("0"))
	app.Update(specialKeyMsg(tea.KeyF3))
	app.Update(specialKeyMsg(tea.KeyF2))

	if app.queueView.Err() == nil {
		t.Error("queue view should keep its edited inputs after switching modes")
	}
}

func TestApp_QuitConfirmation(t *testing.T) {
	app := newTestApp(t)
	app.Update(keyMsg("q"))

	if !app.showConfirm {
		t.Error("expected quit confirmation dialog")
	}
}

func TestApp_QuitConfirmation_Cancel(t *testing.T) {
	app := newTestApp(t)
	app.Update(keyMsg("q"))
	app.Update(keyMsg("n"))

	if app.showConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
	if app.quitting {
		t.Error("expected app not to be quitting after cancel")
	}
}

func TestApp_QuitConfirmation_Confirm(t *testing.T) {
	app := newTestApp(t)
	app.Update(keyMsg("q"))
	_, cmd := app.Update(keyMsg("y"))

	if !app.quitting {
		t.Error("expected app to be quitting after confirm")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
}

func TestApp_QuitConfirmation_F10(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF10))

	if !app.showConfirm {
		t.Error("expected quit confirmation from F10")
	}
}

func TestApp_QuitConfirmation_EscCancels(t *testing.T) {
	app := newTestApp(t)
	app.Update(keyMsg("q"))
	app.Update(specialKeyMsg(tea.KeyEscape))

	if app.showConfirm {
		t.Error("expected Esc to dismiss confirmation")
	}
}

func TestApp_QuitConfirmation_IgnoresOtherKeys(t *testing.T) {
	app := newTestApp(t)
	app.Update(keyMsg("q"))
	app.Update(keyMsg("5"))

	if !app.showConfirm {
		t.Error("expected confirmation to stay open on unrelated key")
	}
	if p, _ := app.queueView.Params(); p.ArrivalRate != 4 {
		t.Error("keys should not reach the form while the dialog is open")
	}
}

func TestApp_ConfirmDialog_Render(t *testing.T) {
	app := newTestApp(t)
	app.showConfirm = true

	output := app.View()
	if !strings.Contains(output, "CONFIRM EXIT") {
		t.Error("expected confirm dialog in output")
	}
}

func TestApp_WindowResize(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if app.width != 80 {
		t.Errorf("expected width 80, got %d", app.width)
	}
	if app.height != 24 {
		t.Errorf("expected height 24, got %d", app.height)
	}
	if !app.ready {
		t.Error("expected app ready after window size")
	}
}

func TestApp_ViewFitsTerminalHeight(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 24})

	lines := strings.Split(app.View(), "\n")
	if len(lines) > 24 {
		t.Errorf("View() rendered %d lines for a 24-line terminal", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "[F1]Help") {
		t.Error("footer should stay on the last line")
	}
}

func TestKeyMap_FunctionKeyModule(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key  tea.KeyType
		want Module
	}{
		{tea.KeyF1, ModuleHelp},
		{tea.KeyF2, ModuleQueue},
		{tea.KeyF3, ModuleEOQ},
		{tea.KeyF4, ModuleProduction},
		{tea.KeyF5, ModuleBreakEven},
		{tea.KeyF10, ""},
	}
	for _, tt := range tests {
		msg := specialKeyMsg(tt.key)
		if !km.IsFunctionKey(msg) {
			t.Errorf("IsFunctionKey(%v) = false", tt.key)
		}
		if got := km.FunctionKeyModule(msg); got != tt.want {
			t.Errorf("FunctionKeyModule(%v) = %q, want %q", tt.key, got, tt.want)
		}
	}
	if km.IsFunctionKey(keyMsg("a")) {
		t.Error("IsFunctionKey(a) = true")
	}
}

func TestKeyMap_BackspaceIsNotBack(t *testing.T) {
	km := DefaultKeyMap()
	if km.Back.Matches(specialKeyMsg(tea.KeyBackspace)) {
		t.Error("backspace must reach the form inputs")
	}
	if !km.Back.Matches(specialKeyMsg(tea.KeyEscape)) {
		t.Error("esc should match Back")
	}
}

func TestTheme_Components(t *testing.T) {
	for _, scheme := range []config.ColorScheme{config.ColorSchemeGreenPhosphor, config.ColorSchemeAmber, config.ColorSchemeWhite} {
		theme := NewTheme(scheme)
		s := theme.Components()
		if s.Label.GetForeground() != theme.Label.GetForeground() {
			t.Errorf("%s: component label color differs from theme", scheme)
		}
	}
}
