// Package links builds the static asset URLs a Phoji is served from.
//
// A Phoji is addressed as <static base><campaign id>/<file name> and resized
// or cropped with query parameters: s (size in pixels), c (center as an XxY
// coordinate pair) and r (radius, usable without a center).
package links

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Point is a pixel coordinate rendered as XxY.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%dx%d", p.X, p.Y)
}

// Variant describes a derived rendition. Zero values are omitted from the URL.
type Variant struct {
	Size   int
	Center *Point
	Radius int
}

// Query renders the variant as a query string in s, c, r order, without the
// leading question mark.
func (v Variant) Query() string {
	var parts []string
	if v.Size > 0 {
		parts = append(parts, "s="+strconv.Itoa(v.Size))
	}
	if v.Center != nil {
		parts = append(parts, "c="+v.Center.String())
	}
	if v.Radius > 0 {
		parts = append(parts, "r="+strconv.Itoa(v.Radius))
	}
	return strings.Join(parts, "&")
}

// Example is a derived URL with a human-readable note.
type Example struct {
	URL  string
	Note string
}

// ImageURL returns the URL of the original uploaded image.
func ImageURL(staticBase, campaignID, fileName string) string {
	return staticBase + campaignID + "/" + fileName
}

// VariantURL returns the URL of a derived rendition of the image.
func VariantURL(staticBase, campaignID, fileName string, v Variant) string {
	u := ImageURL(staticBase, campaignID, fileName)
	if q := v.Query(); q != "" {
		u += "?" + q
	}
	return u
}

// Examples returns the original image URL followed by three sample renditions.
func Examples(staticBase, campaignID, fileName string) []Example {
	variant := func(v Variant) string {
		return VariantURL(staticBase, campaignID, fileName, v)
	}

	return []Example{
		{
			URL:  ImageURL(staticBase, campaignID, fileName),
			Note: "Original image",
		},
		{
			URL:  variant(Variant{Size: 60}),
			Note: "Phoji of size 60 pixels. s is for size",
		},
		{
			URL:  variant(Variant{Size: 200, Center: &Point{X: 300, Y: 299}}),
			Note: "Phoji of 200 pixels, off center. The c value is an x and y coordinate pair used for centering the Phoji.",
		},
		{
			URL:  variant(Variant{Size: 200, Center: &Point{X: 200, Y: 200}, Radius: 50}),
			Note: "Phoji of 200 pixels, zoomed in. r is for radius. Can be used without specifying a center.",
		},
	}
}

// Print writes the result banner and one tab-indented line per example with
// the notes aligned.
func Print(w io.Writer, examples []Example) error {
	fmt.Fprintln(w, strings.Repeat("=", 57))
	fmt.Fprintln(w, "Sample image uploaded!")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example URLs:")

	width := 0
	for _, e := range examples {
		width = max(width, len(e.URL))
	}

	for _, e := range examples {
		if _, err := fmt.Fprintf(w, "\t%-*s  <- %s\n", width, e.URL, e.Note); err != nil {
			return err
		}
	}
	return nil
}
