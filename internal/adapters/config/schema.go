package config

// blueprintFile represents the structure of the flakegen.yaml file.
// Every field is optional; absent fields keep their default values.
type blueprintFile struct {
	Manifest  string        `yaml:"manifest"`
	Lock      string        `yaml:"lock"`
	Fallback  string        `yaml:"fallbackRevision"`
	Toolchain *toolchainDTO `yaml:"toolchain"`
	Package   *packageDTO   `yaml:"package"`
	DevShell  *devShellDTO  `yaml:"devshell"`
	Overlay   *overlayDTO   `yaml:"overlay"`
	Formatter string        `yaml:"formatter"`
}

// toolchainDTO selects the shared toolchain bundle.
type toolchainDTO struct {
	Scheme  string   `yaml:"scheme"`
	Modules []string `yaml:"modules"`
}

// packageDTO carries the package-build overrides.
type packageDTO struct {
	NativeBuildTools []string          `yaml:"nativeBuildTools"`
	PropagatedTools  []string          `yaml:"propagatedTools"`
	Environment      map[string]string `yaml:"environment"`
}

// devShellDTO carries the dev-shell overrides.
type devShellDTO struct {
	Tools       []string          `yaml:"tools"`
	Environment map[string]string `yaml:"environment"`
}

// overlayDTO names the overlay entry.
type overlayDTO struct {
	Name string `yaml:"name"`
}
