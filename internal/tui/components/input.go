package components

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ordash/ordash/internal/models"
)

// labelWidth is the column width of field labels.
const labelWidth = 32

// Input is a single-line text input. In numeric mode it accepts only digits
// and one decimal point, plus a leading minus when the lower bound is
// negative, and Validate enforces that bound.
type Input struct {
	label       string
	value       string
	placeholder string
	width       int
	focused     bool
	cursorPos   int
	maxLength   int
	required    bool
	err         string

	numeric bool
	min     float64
	styles  Styles
}

// NewInput creates a new input field.
func NewInput(label string) *Input {
	return &Input{
		label:     label,
		width:     20,
		maxLength: 100,
		styles:    DefaultStyles(),
	}
}

// NewNumberInput creates a required numeric input holding value and
// rejecting anything below min.
func NewNumberInput(label string, value, min float64) *Input {
	i := NewInput(label)
	i.numeric = true
	i.min = min
	i.required = true
	i.maxLength = 24
	i.SetValue(FormatInputValue(value))
	return i
}

// FormatInputValue renders a float as the shortest string that round-trips.
func FormatInputValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SetValue sets the input value.
func (i *Input) SetValue(v string) *Input {
	i.value = v
	i.cursorPos = len(v)
	return i
}

// SetPlaceholder sets the placeholder text.
func (i *Input) SetPlaceholder(p string) *Input {
	i.placeholder = p
	return i
}

// SetWidth sets the input width.
func (i *Input) SetWidth(w int) *Input {
	i.width = w
	return i
}

// SetMaxLength sets the maximum input length.
func (i *Input) SetMaxLength(m int) *Input {
	i.maxLength = m
	return i
}

// SetRequired marks the field as required.
func (i *Input) SetRequired(r bool) *Input {
	i.required = r
	return i
}

// SetError sets an error message.
func (i *Input) SetError(e string) *Input {
	i.err = e
	return i
}

// SetStyles replaces the input palette.
func (i *Input) SetStyles(s Styles) {
	i.styles = s
}

// Focus sets the focus state.
func (i *Input) Focus(focused bool) {
	i.focused = focused
	if focused && i.cursorPos > len(i.value) {
		i.cursorPos = len(i.value)
	}
}

// IsFocused returns the focus state.
func (i *Input) IsFocused() bool {
	return i.focused
}

// Label returns the field label.
func (i *Input) Label() string {
	return i.label
}

// Value returns the current value.
func (i *Input) Value() string {
	return i.value
}

// Error returns the last validation message.
func (i *Input) Error() string {
	return i.err
}

// HandleKey handles a key press.
func (i *Input) HandleKey(key string) {
	if !i.focused {
		return
	}

	switch key {
	case "backspace":
		if len(i.value) > 0 && i.cursorPos > 0 {
			i.value = i.value[:i.cursorPos-1] + i.value[i.cursorPos:]
			i.cursorPos--
		}
	case "delete":
		if i.cursorPos < len(i.value) {
			i.value = i.value[:i.cursorPos] + i.value[i.cursorPos+1:]
		}
	case "left":
		if i.cursorPos > 0 {
			i.cursorPos--
		}
	case "right":
		if i.cursorPos < len(i.value) {
			i.cursorPos++
		}
	case "home", "ctrl+a":
		i.cursorPos = 0
	case "end", "ctrl+e":
		i.cursorPos = len(i.value)
	case "ctrl+u":
		i.value = i.value[i.cursorPos:]
		i.cursorPos = 0
	default:
		if len(key) == 1 && len(i.value) < i.maxLength && i.accepts(key[0]) {
			i.value = i.value[:i.cursorPos] + key + i.value[i.cursorPos:]
			i.cursorPos++
		}
	}
}

func (i *Input) accepts(c byte) bool {
	if !i.numeric {
		return c >= ' ' && c <= '~'
	}
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '.':
		return !strings.Contains(i.value, ".")
	case c == '-':
		return i.min < 0 && i.cursorPos == 0 && !strings.HasPrefix(i.value, "-")
	}
	return false
}

// Float parses a numeric input.
func (i *Input) Float() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(i.value), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number", i.label)
	}
	return v, nil
}

// Validate checks the input and records a message for Render.
func (i *Input) Validate() bool {
	if i.required && strings.TrimSpace(i.value) == "" {
		i.err = "required"
		return false
	}
	if i.numeric {
		v, err := i.Float()
		if err != nil {
			i.err = "not a number"
			return false
		}
		if v < i.min {
			i.err = "must be ≥ " + FormatInputValue(i.min)
			return false
		}
	}
	i.err = ""
	return true
}

// ParseInputs validates every input and returns their numeric values in
// order. Invalid inputs are reported together as *models.ValidationError.
func ParseInputs(inputs ...*Input) ([]float64, error) {
	var errs []error
	values := make([]float64, len(inputs))
	for idx, in := range inputs {
		if !in.Validate() {
			errs = append(errs, &models.ValidationError{Field: in.Label(), Reason: in.Error()})
			continue
		}
		values[idx], _ = in.Float()
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return values, nil
}

// Render renders the input field.
func (i *Input) Render() string {
	labelStyle := i.styles.Label.Width(labelWidth)

	label := i.label
	if i.required {
		label += "*"
	}
	label += ":"

	var display string
	if i.value == "" && i.placeholder != "" && !i.focused {
		display = i.styles.Muted.Render(i.placeholder)
	} else if i.focused {
		before := i.value[:i.cursorPos]
		after := ""
		if i.cursorPos < len(i.value) {
			after = i.value[i.cursorPos:]
		}
		display = i.styles.Focus.Render(before + "_" + after)
	} else {
		display = i.styles.Value.Render(i.value)
	}

	displayLen := len(i.value)
	if i.focused {
		displayLen++
	}
	if displayLen < i.width {
		display += strings.Repeat(" ", i.width-displayLen)
	}

	result := labelStyle.Render(label) + " " + display

	if i.err != "" {
		result += " " + i.styles.Error.Render(i.err)
	}

	return result
}

// Select is a selection input component.
type Select struct {
	label    string
	options  []string
	selected int
	focused  bool
	styles   Styles
}

// NewSelect creates a new select input.
func NewSelect(label string, options []string) *Select {
	return &Select{
		label:   label,
		options: options,
		styles:  DefaultStyles(),
	}
}

// SetSelected sets the selected index.
func (s *Select) SetSelected(idx int) *Select {
	if idx >= 0 && idx < len(s.options) {
		s.selected = idx
	}
	return s
}

// SetValue selects the option equal to v, if present.
func (s *Select) SetValue(v string) *Select {
	for idx, opt := range s.options {
		if opt == v {
			s.selected = idx
		}
	}
	return s
}

// SetStyles replaces the select palette.
func (s *Select) SetStyles(st Styles) {
	s.styles = st
}

// Focus sets the focus state.
func (s *Select) Focus(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state.
func (s *Select) IsFocused() bool {
	return s.focused
}

// Value returns the selected value.
func (s *Select) Value() string {
	if s.selected >= 0 && s.selected < len(s.options) {
		return s.options[s.selected]
	}
	return ""
}

// SelectedIndex returns the selected index.
func (s *Select) SelectedIndex() int {
	return s.selected
}

// HandleKey handles a key press.
func (s *Select) HandleKey(key string) {
	if !s.focused {
		return
	}

	switch key {
	case "left", "h":
		if s.selected > 0 {
			s.selected--
		}
	case "right", "l":
		if s.selected < len(s.options)-1 {
			s.selected++
		}
	}
}

// Render renders the select.
func (s *Select) Render() string {
	labelStyle := s.styles.Label.Width(labelWidth)

	var b strings.Builder
	b.WriteString(labelStyle.Render(s.label + ":"))
	b.WriteString(" ")

	for i, opt := range s.options {
		if i > 0 {
			b.WriteString(" ")
		}

		if i == s.selected {
			if s.focused {
				b.WriteString(s.styles.Selected.Render("[" + opt + "]"))
			} else {
				b.WriteString(s.styles.Selected.Render("(" + opt + ")"))
			}
		} else {
			b.WriteString(s.styles.Label.Render(" " + opt + " "))
		}
	}

	return b.String()
}

// FormField is implemented by every component a Form can hold.
type FormField interface {
	Focus(bool)
	IsFocused() bool
	HandleKey(string)
	Render() string
}

var (
	_ FormField = (*Input)(nil)
	_ FormField = (*Select)(nil)
)

// Form is a simple form container.
type Form struct {
	title      string
	help       string
	fields     []FormField
	hidden     map[FormField]bool
	focusIndex int
	submitted  bool
	cancelled  bool
	err        string
	styles     Styles
}

// NewForm creates a new form.
func NewForm(title string) *Form {
	return &Form{
		title:  title,
		help:   "Tab/Down:Next  Shift+Tab/Up:Prev  Ctrl+R:Reset",
		hidden: make(map[FormField]bool),
		styles: DefaultStyles(),
	}
}

// AddField adds a field to the form.
func (f *Form) AddField(field FormField) *Form {
	f.fields = append(f.fields, field)
	if len(f.fields) == 1 {
		field.Focus(true)
	}
	return f
}

// SetHelp replaces the help line shown under the fields.
func (f *Form) SetHelp(help string) *Form {
	f.help = help
	return f
}

// SetStyles replaces the form palette.
func (f *Form) SetStyles(s Styles) {
	f.styles = s
}

// SetHidden hides or shows a field. Hidden fields are skipped by focus
// navigation and not rendered.
func (f *Form) SetHidden(field FormField, hidden bool) {
	f.hidden[field] = hidden
	if hidden && f.focusIndex < len(f.fields) && f.fields[f.focusIndex] == field {
		f.nextField()
	}
}

// HandleKey handles form navigation.
func (f *Form) HandleKey(key string) {
	switch key {
	case "tab", "down":
		f.nextField()
	case "shift+tab", "up":
		f.prevField()
	case "ctrl+s":
		f.submitted = true
	case "esc":
		f.cancelled = true
	case "enter":
		if f.focusIndex == f.lastVisible() {
			f.submitted = true
		} else {
			f.nextField()
		}
	default:
		if f.focusIndex < len(f.fields) {
			f.fields[f.focusIndex].HandleKey(key)
		}
	}
}

func (f *Form) lastVisible() int {
	for i := len(f.fields) - 1; i >= 0; i-- {
		if !f.hidden[f.fields[i]] {
			return i
		}
	}
	return -1
}

func (f *Form) nextField() {
	f.step(1)
}

func (f *Form) prevField() {
	f.step(-1)
}

func (f *Form) step(dir int) {
	n := len(f.fields)
	if n == 0 {
		return
	}
	f.fields[f.focusIndex].Focus(false)
	for range n {
		f.focusIndex = (f.focusIndex + dir + n) % n
		if !f.hidden[f.fields[f.focusIndex]] {
			break
		}
	}
	f.fields[f.focusIndex].Focus(true)
}

// FocusIndex returns the index of the focused field.
func (f *Form) FocusIndex() int {
	return f.focusIndex
}

// IsSubmitted returns true if form was submitted.
func (f *Form) IsSubmitted() bool {
	return f.submitted
}

// IsCancelled returns true if form was cancelled.
func (f *Form) IsCancelled() bool {
	return f.cancelled
}

// ClearStatus resets the submitted and cancelled flags.
func (f *Form) ClearStatus() {
	f.submitted = false
	f.cancelled = false
}

// SetError sets an error message.
func (f *Form) SetError(err string) {
	f.err = err
}

// Render renders the form.
func (f *Form) Render() string {
	var b strings.Builder

	b.WriteString(f.styles.Title.Render(fmt.Sprintf("=== %s ===", f.title)))
	b.WriteString("\n\n")

	for _, field := range f.fields {
		if f.hidden[field] {
			continue
		}
		b.WriteString(field.Render())
		b.WriteString("\n")
	}

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(f.styles.Error.Render("Error: " + f.err))
		b.WriteString("\n")
	}

	if f.help != "" {
		b.WriteString("\n")
		b.WriteString(f.styles.Label.Render(f.help))
	}

	return b.String()
}
