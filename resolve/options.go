package resolve

// Override is the user's per-capability instruction. ForceOn and
// ForceOff take precedence over detection; Unset defers to it.
type Override int

const (
	Unset Override = iota
	ForceOn
	ForceOff
)

// applyOverrides reconciles detected capabilities with user overrides
// and accumulates, in capability order, everything an enabled capability
// asks for. Overrides naming capabilities outside caps have no effect:
// a shared override file may mention backends this package version does
// not know about.
func applyOverrides(caps []Capability, overrides map[string]Override) (enabled, components, defines []string) {
	for _, c := range caps {
		on := c.Detected
		switch overrides[c.Name] {
		case ForceOn:
			on = true
		case ForceOff:
			on = false
		}
		if !on {
			continue
		}
		enabled = append(enabled, c.Name)
		components = append(components, c.Component)
		defines = append(defines, c.Define)
	}
	return enabled, components, defines
}
