package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"coursepage/internal/config"
	"coursepage/internal/ui/state"
	"coursepage/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state    *state.AppState
	config   *config.Config
	width    int
	height   int
	help     help.Model
	keys     help.KeyMap
	modeName string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, keys help.KeyMap) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
		keys:   keys,
	}
}

// SetState points the view model at new state after a content reload
func (vm *ViewModel) SetState(appState *state.AppState) {
	vm.state = appState
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// SetModeName sets the input mode shown in the status bar
func (vm *ViewModel) SetModeName(name string) {
	vm.modeName = name
}

// Narrow reports whether the terminal is below the configured narrow width
func (vm *ViewModel) Narrow() bool {
	return vm.width < vm.config.UI.NarrowWidth
}

// BuildViewState creates a ViewState for rendering. Body and ScrollPercent are filled
// in by the caller, which owns the viewport.
func (vm *ViewModel) BuildViewState() views.ViewState {
	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Narrow:        vm.Narrow(),
		Page:          vm.state.Page,
		Carousels:     vm.state.Carousels,
		Accordions:    vm.state.Accordions,
		FocusedID:     vm.state.FocusedID(),
		PanelCursor:   vm.state.PanelCursor,
		Autoplay:      vm.config.Autoplay.Enabled,
		ModeName:      vm.modeName,
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
		ShowHelp:      vm.state.ShowHelp,
		ShowHelpBar:   vm.config.UI.ShowHelpBar,
		HelpModel:     vm.help,
		Keys:          vm.keys,
	}
}
