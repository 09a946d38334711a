package face

import (
	"math"
	"strings"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/copilot-face/pkg/components"
)

// Face geometry. A face unit is 1/64 of the eye diameter; the terminal eye
// is eyeDiameterPx half-block pixels across.
const (
	eyeDiameterPx = 20
	unitsToPx     = float64(eyeDiameterPx) / 64
	pupilRadiusPx = 16 * unitsToPx
	eyeGapCols    = 6
	waveRows      = 3
	waveBoxUnits  = 40
	zzRows        = 2

	marginCols = 4
	marginRows = 2

	faceCols = eyeDiameterPx*2 + eyeGapCols
	faceRows = zzRows + eyeDiameterPx/2 + 1 + waveRows

	// Width and Height are the rendered size of the face in cells,
	// including the margin the gestures move within.
	Width  = faceCols + 2*marginCols
	Height = faceRows + 2*marginRows
)

// Palette holds the hex colors the face is drawn with.
type Palette struct {
	Background string
	Ring       string
	Sclera     string
	Pupil      string
	Lid        string
	Wave       string
	Dim        string
}

// DefaultPalette matches the light card look: white sclera, slate pupil,
// emerald wave.
func DefaultPalette() Palette {
	return Palette{
		Background: "#ffffff",
		Ring:       "#e2e8f0",
		Sclera:     "#f8fafc",
		Pupil:      "#0f172a",
		Lid:        "#ffffff",
		Wave:       "#10b981",
		Dim:        "#94a3b8",
	}
}

// Render draws f as exactly Height lines of Width cells.
func Render(f Frame, pal Palette, p termenv.Profile) string {
	content := make([]string, 0, faceRows)
	content = append(content, renderZz(f, pal, p)...)

	left := strings.Split(RenderEye(f.Left, f.ScaleY, pal, p), "\n")
	right := strings.Split(RenderEye(f.Right, f.ScaleY, pal, p), "\n")
	gap := strings.Repeat(" ", eyeGapCols)
	for i := range left {
		content = append(content, left[i]+gap+right[i])
	}
	content = append(content, "")
	content = append(content, renderWave(f, pal, p)...)

	dx := int(math.Round(f.Transform.X * unitsToPx))
	dy := int(math.Round(f.Transform.Y*unitsToPx/2 + f.Transform.RotateX/10))
	shear := math.Tan(f.Transform.Rotate * math.Pi / 180)
	mid := float64(len(content)-1) / 2

	shifted := make([]string, len(content))
	for i, line := range content {
		// Cells are about twice as tall as wide, hence the factor 2.
		x := marginCols + dx + int(math.Round(shear*(float64(i)-mid)*2))
		if x < 0 {
			x = 0
		}
		shifted[i] = strings.Repeat(" ", x) + line
	}
	return components.Place(shifted, Width, Height, 0, marginRows+dy)
}

// RenderEye draws one eye: a ringed sclera, a pupil squashed vertically by
// scaleY and displaced by the eye's offset, and an eyelid covering the eye
// from the top by the lid fraction.
func RenderEye(e EyeFrame, scaleY float64, pal Palette, p termenv.Profile) string {
	cv := components.NewCanvas(eyeDiameterPx, eyeDiameterPx)
	r := float64(eyeDiameterPx) / 2
	inEye := func(x, y float64) bool { return math.Hypot(x-r, y-r) <= r }

	cv.Fill(pal.Ring, inEye)
	cv.Fill(pal.Sclera, func(x, y float64) bool { return math.Hypot(x-r, y-r) <= r-0.9 })

	px := r + e.Offset.X*unitsToPx
	py := r + e.Offset.Y*unitsToPx
	rx := pupilRadiusPx
	ry := pupilRadiusPx * scaleY
	cv.Fill(pal.Pupil, func(x, y float64) bool {
		dx, dy := (x-px)/rx, (y-py)/ry
		return inEye(x, y) && dx*dx+dy*dy <= 1
	})

	if cover := e.Lid * float64(eyeDiameterPx); cover > 0 {
		cv.Fill(pal.Lid, func(x, y float64) bool { return inEye(x, y) && y < cover })
	}
	return cv.Render(p, pal.Background)
}

func renderWave(f Frame, pal Palette, p termenv.Profile) []string {
	out := make([]string, waveRows)
	if len(f.Wave) == 0 {
		return out
	}
	fractions := make([]float64, len(f.Wave))
	for i, h := range f.Wave {
		fractions[i] = h / waveBoxUnits
	}
	color := components.Blend(pal.Background, pal.Wave, f.WaveOpacity)
	for i, line := range components.Bars(fractions, waveRows, 1) {
		out[i] = components.PadCenter(tint(line, color, p), faceCols)
	}
	return out
}

func renderZz(f Frame, pal Palette, p termenv.Profile) []string {
	out := make([]string, zzRows)
	if !f.Sleeping || f.ZzOpacity < 0.15 {
		return out
	}
	row := zzRows - 1
	if f.ZzRise < -16 {
		row = 0
	}
	color := components.Blend(pal.Background, pal.Dim, f.ZzOpacity)
	out[row] = strings.Repeat(" ", faceCols-2) + tint("Zz", color, p)
	return out
}

// tint colors s in the foreground; the Ascii profile gets s unchanged.
func tint(s, color string, p termenv.Profile) string {
	if p == termenv.Ascii {
		return s
	}
	return termenv.String(s).Foreground(p.Color(color)).String()
}
