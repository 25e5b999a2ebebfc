package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/photosheet/pkg/sheet"
)

// sheetFlags holds the geometry flags shared by the root and layout commands.
// Zero values here are placeholders; resolve only copies flags the user set.
type sheetFlags struct {
	configFile string
	preset     string
	format     string

	rows        int
	cols        int
	spacing     string
	orientation string

	border      int
	photoWidth  int
	photoHeight int
	resample    string

	guide       string
	guideColor  string
	guideWidth  int
	guideGap    int
	crop        string
	faceCascade string
}

// register binds the geometry flags to cmd. Defaults shown in help come from
// the standard preset.
func (f *sheetFlags) register(cmd *cobra.Command) {
	d := sheet.Default()
	fs := cmd.Flags()

	fs.StringVarP(&f.configFile, "config", "c", "", "TOML file with sheet settings")
	fs.StringVarP(&f.preset, "preset", "p", sheet.DefaultPreset, "named layout: standard, classic")

	fs.IntVar(&f.rows, "rows", d.Grid.Rows, "grid rows")
	fs.IntVar(&f.cols, "cols", d.Grid.Cols, "grid columns")
	fs.StringVar(&f.spacing, "spacing", d.Grid.Spacing, "grid spacing: centered, even")
	fs.StringVar(&f.orientation, "orientation", d.Grid.Orientation, "paper orientation: portrait, landscape")

	fs.IntVar(&f.border, "border", d.Photo.Border, "white border around each photo (px)")
	fs.IntVar(&f.photoWidth, "photo-width", d.Photo.Width, "photo width (px at 300 DPI)")
	fs.IntVar(&f.photoHeight, "photo-height", d.Photo.Height, "photo height (px at 300 DPI)")
	fs.StringVar(&f.resample, "resample", d.Photo.Resample, "resize filter: lanczos, catmullrom, linear, box, nearest")

	fs.StringVar(&f.guide, "guide", d.Guideline.Style, "cutting guide style: dotted, solid, none")
	fs.StringVar(&f.guideColor, "guide-color", d.Guideline.Color, "cutting guide color (name or #rrggbb)")
	fs.IntVar(&f.guideWidth, "guide-width", d.Guideline.Width, "cutting guide line width (px)")
	fs.IntVar(&f.guideGap, "guide-gap", d.Guideline.Gap, "gap between dots of a dotted guide (px)")

	fs.StringVar(&f.crop, "crop", d.Crop.Mode, "crop mode: center, smart, face")
	fs.StringVar(&f.faceCascade, "face-cascade", "", "pigo cascade file for --crop face")

	_ = cmd.RegisterFlagCompletionFunc("preset", fixedCompletions(sheet.PresetNames()...))
	_ = cmd.RegisterFlagCompletionFunc("spacing", fixedCompletions(sheet.SpacingCentered, sheet.SpacingEven))
	_ = cmd.RegisterFlagCompletionFunc("orientation", fixedCompletions(sheet.OrientationPortrait, sheet.OrientationLandscape))
	_ = cmd.RegisterFlagCompletionFunc("guide", fixedCompletions(sheet.GuideDotted, sheet.GuideSolid, sheet.GuideNone))
	_ = cmd.RegisterFlagCompletionFunc("crop", fixedCompletions(sheet.CropCenter, sheet.CropSmart, sheet.CropFace))
}

// resolve layers preset, config file and changed flags into a validated config.
func (f *sheetFlags) resolve(cmd *cobra.Command) (sheet.Config, error) {
	cfg, err := sheet.Preset(f.preset)
	if err != nil {
		return sheet.Config{}, err
	}
	if f.configFile != "" {
		if cfg, err = sheet.LoadFile(f.configFile, cfg); err != nil {
			return sheet.Config{}, err
		}
	}

	changed := cmd.Flags().Changed
	ints := []struct {
		name string
		val  int
		dst  *int
	}{
		{"rows", f.rows, &cfg.Grid.Rows},
		{"cols", f.cols, &cfg.Grid.Cols},
		{"border", f.border, &cfg.Photo.Border},
		{"photo-width", f.photoWidth, &cfg.Photo.Width},
		{"photo-height", f.photoHeight, &cfg.Photo.Height},
		{"guide-width", f.guideWidth, &cfg.Guideline.Width},
		{"guide-gap", f.guideGap, &cfg.Guideline.Gap},
	}
	for _, o := range ints {
		if changed(o.name) {
			*o.dst = o.val
		}
	}

	strs := []struct {
		name string
		val  string
		dst  *string
	}{
		{"spacing", f.spacing, &cfg.Grid.Spacing},
		{"orientation", f.orientation, &cfg.Grid.Orientation},
		{"resample", f.resample, &cfg.Photo.Resample},
		{"guide", f.guide, &cfg.Guideline.Style},
		{"guide-color", f.guideColor, &cfg.Guideline.Color},
		{"crop", f.crop, &cfg.Crop.Mode},
		{"face-cascade", f.faceCascade, &cfg.Crop.FaceCascade},
	}
	for _, o := range strs {
		if changed(o.name) {
			*o.dst = o.val
		}
	}

	if err := cfg.Validate(); err != nil {
		return sheet.Config{}, err
	}
	return cfg, nil
}

func fixedCompletions(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
