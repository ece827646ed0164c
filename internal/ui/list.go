package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/beers/internal/models"
	"github.com/desertthunder/beers/internal/shared"
)

// EmptyMessage is shown instead of the list when the collection is empty.
const EmptyMessage = models.EmptyMessage

// cardHeight is the line count of a fully populated card.
const cardHeight = 7

var (
	_ list.Item         = beerItem{}
	_ list.ItemDelegate = beerDelegate{}
)

// beerItem wraps [models.Beer] to implement [list.Item].
type beerItem struct {
	beer models.Beer
}

func (i beerItem) FilterValue() string {
	return strings.Join([]string{i.beer.Name, i.beer.Brewery, i.beer.Style}, " ")
}

// beerDelegate renders each [beerItem] as a card.
type beerDelegate struct {
	dates *shared.DateFormatter
}

func (d beerDelegate) Height() int                         { return cardHeight }
func (d beerDelegate) Spacing() int                        { return 1 }
func (d beerDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d beerDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(beerItem)
	if !ok {
		return
	}
	fmt.Fprint(w, RenderCard(it.beer, d.dates, index == m.Index()))
}

// RenderCard renders one beer. Optional fields are only shown when set; the card is padded to a fixed height.
func RenderCard(beer models.Beer, dates *shared.DateFormatter, selected bool) string {
	lines := []string{styles.heading.Render(beer.Name), "Brewery: " + beer.Brewery}

	if beer.Style != "" {
		lines = append(lines, "Style: "+beer.Style)
	}
	if beer.HasRating() {
		stars := strings.Repeat(starFilled, beer.Rating)
		lines = append(lines, fmt.Sprintf("Rating: %s %s", styles.star.Render(stars), models.RatingText(beer.Rating)))
	}
	if beer.Notes != "" {
		lines = append(lines, "Notes: "+strings.Join(strings.Fields(beer.Notes), " "))
	}
	lines = append(lines, "Added: "+dates.Format(beer.DateAdded))

	if selected {
		lines = append(lines, styles.help.Render("d: "+beer.DeleteLabel()))
	}
	for len(lines) < cardHeight {
		lines = append(lines, "")
	}

	style := styles.card
	if selected {
		style = styles.selected
	}
	return style.Render(strings.Join(lines, "\n"))
}

// BeerList shows the collection and turns delete keys into delete requests.
//
// With confirmation enabled a delete key emits [MsgConfirmRequested] carrying the [MsgDeleteBeer];
// otherwise [MsgDeleteBeer] is emitted directly.
type BeerList struct {
	list          list.Model
	dates         *shared.DateFormatter
	confirmDelete bool
	keys          keyMap
}

// NewBeerList creates an empty list.
func NewBeerList(dates *shared.DateFormatter, confirmDelete bool) BeerList {
	if dates == nil {
		dates = shared.NewDateFormatter("")
	}

	l := list.New(nil, beerDelegate{dates: dates}, 80, 24)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetStatusBarItemName("beer", "beers")
	l.DisableQuitKeybindings()

	return BeerList{list: l, dates: dates, confirmDelete: confirmDelete, keys: newKeyMap()}
}

// SetBeers replaces the displayed collection.
func (l BeerList) SetBeers(beers []models.Beer) (BeerList, tea.Cmd) {
	items := make([]list.Item, len(beers))
	for i, b := range beers {
		items[i] = beerItem{beer: b}
	}
	cmd := l.list.SetItems(items)
	return l, cmd
}

// SetSize resizes the list.
func (l BeerList) SetSize(w, h int) BeerList {
	l.list.SetSize(w, h)
	return l
}

// Len returns the number of beers in the collection.
func (l BeerList) Len() int { return len(l.list.Items()) }

// Filtering reports whether the filter input is capturing keys.
func (l BeerList) Filtering() bool { return l.list.FilterState() == list.Filtering }

// Selected returns the beer under the cursor.
func (l BeerList) Selected() (models.Beer, bool) {
	it, ok := l.list.SelectedItem().(beerItem)
	if !ok {
		return models.Beer{}, false
	}
	return it.beer, true
}

// RequestDelete emits the delete request for beer, gated by confirmation when enabled.
func (l BeerList) RequestDelete(beer models.Beer) tea.Cmd {
	del := deleteBeerMsg(beer.ID)
	if !l.confirmDelete {
		return send(del)
	}
	return send(confirmRequestedMsg(beer.DeleteLabel()+"?", del))
}

// Update handles delete keys and forwards everything else to the underlying [list.Model].
func (l BeerList) Update(msg tea.Msg) (BeerList, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !l.Filtering() && key.Matches(keyMsg, l.keys.del) {
		if beer, ok := l.Selected(); ok {
			return l, l.RequestDelete(beer)
		}
		return l, nil
	}

	var cmd tea.Cmd
	l.list, cmd = l.list.Update(msg)
	return l, cmd
}

// View renders the cards, or [EmptyMessage] when there is nothing to show.
func (l BeerList) View() string {
	if l.Len() == 0 {
		return styles.dim.Render(EmptyMessage)
	}
	return l.list.View()
}
