package rules

// Preset is a named bundle of rule ids that a checker run starts from.
// Presets are plain configuration data: adding a new rule to the catalogue
// never requires touching an existing preset, because presets are expressed
// as deltas from the full catalogue.
type Preset struct {
	Name string
	// Disabled lists rule ids that the preset turns off. Every rule in the
	// catalogue that is not listed here is enabled.
	Disabled []string
}

var presets = map[string]Preset{
	// strict enables the full catalogue.
	"strict": {Name: "strict"},

	// recommended relaxes the documentation and file-layout contracts while
	// keeping every purity rule on.
	"recommended": {
		Name: "recommended",
		Disabled: []string{
			RequireJSDoc,
			JSDocParams,
			FilenameMatch,
		},
	},

	// minimal keeps only the rules that guard against runtime surprises,
	// for incremental adoption on an existing codebase.
	"minimal": {
		Name: "minimal",
		Disabled: []string{
			RequireJSDoc,
			JSDocParams,
			RequireParamType,
			FilenameMatch,
			PureModule,
			IOModule,
			OnePublicFunction,
			MaxParams,
			PreferReadonlyArray,
			RequireExportType,
			RequireArrayType,
			RequireLetType,
			SwitchCaseBlock,
		},
	},
}

// PresetNames returns the names of all registered presets.
func PresetNames() []string {
	return []string{"minimal", "recommended", "strict"}
}

// LookupPreset returns the preset with the given name. The boolean result
// reports whether the name is registered.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// DisabledSet returns the preset's disabled rules as a set for fast lookup.
func (p Preset) DisabledSet() map[string]bool {
	set := make(map[string]bool, len(p.Disabled))
	for _, id := range p.Disabled {
		set[id] = true
	}
	return set
}
