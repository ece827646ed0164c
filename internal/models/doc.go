// Package models defines the domain entities of the beer tracker.
//
// The package contains two kinds of types:
//
// 1. Records: the persisted unit of data
//   - [Beer] : one tracked beverage with its id and creation date
//
// 2. Inputs: values collected from a rendering surface before the owner stamps them
//   - [BeerInput] : the fields of the add form, without id or date
//
// Rating helpers ([IsValidRating], [NormalizeRating], [RatingText], [StarLabel]) are shared by every surface
// so that the terminal UI, the web page and the exporters agree on what counts as a rating.
package models
