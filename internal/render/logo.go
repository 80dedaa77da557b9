package render

import "os"

// LogoRenderer draws the studio logo at a given width and reports the height
// consumed. The variant is selected once at startup from asset availability.
type LogoRenderer interface {
	Draw(cv *Canvas, x, y, w float64) float64
}

// TextLogo is the fallback wordmark used when no logo asset is present.
type TextLogo struct{}

// Draw renders the wordmark vertically centered in the box the image would
// occupy.
func (TextLogo) Draw(cv *Canvas, x, y, w float64) float64 {
	h := w * logoAspect
	cv.SetFont("B", 14)
	cv.SetFillColor(Green)
	cv.DrawString(x, y+h/2, "blok blok studio")
	return h
}

// ImageLogo draws an image asset at the brand aspect ratio.
type ImageLogo struct {
	Path string
}

func (l ImageLogo) Draw(cv *Canvas, x, y, w float64) float64 {
	h := w * logoAspect
	cv.Image(l.Path, x, y, w, h)
	return h
}

// SelectLogo returns an ImageLogo when the asset exists, TextLogo otherwise.
func SelectLogo(path string) LogoRenderer {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return ImageLogo{Path: path}
		}
	}
	return TextLogo{}
}
