package app

import "flag"

// Flags holds the command-line parameters of the widget binary. A zero
// override keeps whatever the configuration says.
type Flags struct {
	ConfigPath string
	Windowed   bool
	Width      int
	Height     int
	Scale      int
	Rate       float64
	Seed       int64
}

// NewFlags returns a Flags populated with defaults.
func NewFlags() *Flags {
	return &Flags{}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "path to the TOML configuration file")
	fs.BoolVar(&f.Windowed, "windowed", f.Windowed, "run in a regular decorated window instead of the overlay")
	fs.IntVar(&f.Width, "width", f.Width, "override the board width in cells")
	fs.IntVar(&f.Height, "height", f.Height, "override the board height in cells")
	fs.IntVar(&f.Scale, "scale", f.Scale, "override the pixel scale multiplier")
	fs.Float64Var(&f.Rate, "rate", f.Rate, "override the generations per second")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "override the grid seed, 0 keeps the configured value")
}
