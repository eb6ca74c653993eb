// Package render synthesizes the placeholder images shown for storyboard
// shots.
//
// A placeholder is an 800x600 PNG: a two-color linear gradient picked at
// random from a fixed palette, with the image prompt word-wrapped and
// centred on top in bold white text with a soft drop shadow.
//
//	r, err := render.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	art, err := r.Render("Opening scene Hero walks into sunset over mountains")
//	fmt.Println(art.DataURL()) // data:image/png;base64,...
//
// # Layout
//
// Text layout is a pure function of the prompt: Wrap breaks the words into
// lines no wider than MaxLineWidth and LayoutText centres the block
// vertically around the canvas midpoint. Only the background color is
// random, and the Picker used to choose it can be replaced:
//
//	r, _ := render.NewRenderer(render.WithPicker(render.FixedPicker(2)))
//	// Every image now uses Palette[2]
package render
