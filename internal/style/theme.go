package style

// Named themes resolvable by internal/config's "theme name" setting
// (SPEC_FULL.md's configuration section). Palettes are base16-default-dark
// and base16-default-light (https://github.com/chriskempson/base16-default-schemes),
// the reference scheme the Base16Color slots above are named after.

func DarkTheme() *ColorTheme {
	return &ColorTheme{
		Base00: Rgb{0x18, 0x18, 0x18}, Base01: Rgb{0x28, 0x28, 0x28},
		Base02: Rgb{0x38, 0x38, 0x38}, Base03: Rgb{0x58, 0x58, 0x58},
		Base04: Rgb{0xb8, 0xb8, 0xb8}, Base05: Rgb{0xd8, 0xd8, 0xd8},
		Base06: Rgb{0xe8, 0xe8, 0xe8}, Base07: Rgb{0xf8, 0xf8, 0xf8},
		Base08: Rgb{0xab, 0x46, 0x42}, Base09: Rgb{0xdc, 0x96, 0x56},
		Base0A: Rgb{0xf7, 0xca, 0x88}, Base0B: Rgb{0xa1, 0xb5, 0x6c},
		Base0C: Rgb{0x86, 0xc1, 0xb9}, Base0D: Rgb{0x7c, 0xaf, 0xc2},
		Base0E: Rgb{0xba, 0x8b, 0xaf}, Base0F: Rgb{0xa1, 0x69, 0x46},
	}
}

func LightTheme() *ColorTheme {
	return &ColorTheme{
		Base00: Rgb{0xf8, 0xf8, 0xf8}, Base01: Rgb{0xe8, 0xe8, 0xe8},
		Base02: Rgb{0xd8, 0xd8, 0xd8}, Base03: Rgb{0xb8, 0xb8, 0xb8},
		Base04: Rgb{0x58, 0x58, 0x58}, Base05: Rgb{0x38, 0x38, 0x38},
		Base06: Rgb{0x28, 0x28, 0x28}, Base07: Rgb{0x18, 0x18, 0x18},
		Base08: Rgb{0xab, 0x46, 0x42}, Base09: Rgb{0xdc, 0x96, 0x56},
		Base0A: Rgb{0xf7, 0xca, 0x88}, Base0B: Rgb{0xa1, 0xb5, 0x6c},
		Base0C: Rgb{0x86, 0xc1, 0xb9}, Base0D: Rgb{0x7c, 0xaf, 0xc2},
		Base0E: Rgb{0xba, 0x8b, 0xaf}, Base0F: Rgb{0xa1, 0x69, 0x46},
	}
}

// ThemeByName resolves a config-supplied theme name to a built-in
// ColorTheme. Unknown names fall back to ok == false so the caller can
// report a configuration error instead of silently picking a default.
func ThemeByName(name string) (*ColorTheme, bool) {
	switch name {
	case "dark", "":
		return DarkTheme(), true
	case "light":
		return LightTheme(), true
	default:
		return nil, false
	}
}
