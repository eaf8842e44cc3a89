package theme

// Result bundles everything one generation run produces. Callers that only
// want the stylesheet read CSS; the registry and token sets are exposed for
// previews and contrast reports.
type Result struct {
	CSS      string
	Registry *Registry
	Light    *TokenSet
	Dark     *TokenSet
}

// Generate runs the whole pipeline: validate the policy, build the palette
// registry, select tokens for both modes, and render the stylesheet. The
// run either completes deterministically or fails fast on a configuration
// error; nothing is retried and no partial output is returned.
func Generate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reg, err := BuildRegistry(cfg.Palettes)
	if err != nil {
		return nil, err
	}

	light, err := SelectTokens(reg, false, cfg)
	if err != nil {
		return nil, err
	}
	dark, err := SelectTokens(reg, true, cfg)
	if err != nil {
		return nil, err
	}

	return &Result{
		CSS:      Render(reg, light, dark, cfg),
		Registry: reg,
		Light:    light,
		Dark:     dark,
	}, nil
}
