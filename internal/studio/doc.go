// Package studio composes the shot list and the placeholder renderer into
// the operations the user interfaces call.
//
// # Studio
//
// The Studio owns the storyboard and serialises every change to it:
//
//	st := studio.New(settings, renderer, func(event studio.Event) {
//	    fmt.Println(event.Message)
//	})
//
//	shot, err := st.AddShot(ctx, studio.Draft{Title: "Intro"})
//	st.MoveShot(0, model.Down)
//	st.DeleteShot(shot.ID)
//
// # Submissions
//
// AddShot waits for the image backend before rendering. The backend is a
// Latency; the default SimulatedLatency just sleeps. Only one submission
// may be in flight: a second AddShot while the first is waiting fails
// with ErrInFlight. Once started the wait cannot be cancelled.
//
// # Events
//
// Progress is reported via a callback that receives Event values
// (Info, Verbose, Warning, Error, Success). Every event is also written to
// the Studio's structured logger.
package studio
