// Package model defines the core data structures used throughout
// the storyboard-creator application.
//
// # Shot
//
// Shot represents one storyboard entry with its title, description,
// placeholder image and 1-based position:
//
//	fmt.Println(shot.Number)   // Position in the storyboard
//	fmt.Println(shot.ImageURL) // data:image/png;base64,...
//
// # ShotList
//
// ShotList owns the ordered sequence of shots. Every mutation keeps
// shot numbers equal to 1..N in list order:
//
//	list := model.NewShotList()
//	intro, _ := list.Add("Intro", "", imageURL)
//	list.Add("Chase", "Rooftops at night", imageURL)
//	list.Move(1, model.Up)   // Chase is now shot 1, Intro shot 2
//	list.Delete(intro.ID)    // Chase is the only shot, number 1
//
// Out of range moves and deletes of unknown ids are no-ops.
package model
