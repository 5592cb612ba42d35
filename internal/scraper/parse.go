package scraper

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type ScrapedGame struct {
	GameID  int            `json:"game_id"`
	ShowNum int            `json:"show_num,omitempty"`
	AirDate *time.Time     `json:"air_date,omitempty"`
	Rounds  []ScrapedRound `json:"rounds"`
}

type ScrapedRound struct {
	Name       string            `json:"name"`
	Categories []ScrapedCategory `json:"categories"`
}

type ScrapedCategory struct {
	Name  string        `json:"name"`
	Clues []ScrapedClue `json:"clues"`
}

type ScrapedClue struct {
	Text   string `json:"text"`
	Answer string `json:"answer"`
	Value  int    `json:"value"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

var (
	showTitleRe = regexp.MustCompile(`#(\d+)\s*-\s*(.+)$`)
	cluePosRe   = regexp.MustCompile(`clue_(J|DJ)_(\d+)_(\d+)$`)
	valueRe     = regexp.MustCompile(`\$([\d,]+)`)
)

// ParseGame extracts the full board of one archived game from its HTML.
func ParseGame(html []byte, gameID int) (*ScrapedGame, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, err
	}

	game := &ScrapedGame{GameID: gameID}

	title := strings.TrimSpace(doc.Find("#game_title").Text())
	if m := showTitleRe.FindStringSubmatch(title); m != nil {
		game.ShowNum, _ = strconv.Atoi(m[1])
		if t, err := time.Parse("Monday, January 2, 2006", strings.TrimSpace(m[2])); err == nil {
			game.AirDate = &t
		}
	}

	for _, round := range []struct {
		selector string
		name     string
		tag      string
	}{
		{"#jeopardy_round", "jeopardy", "J"},
		{"#double_jeopardy_round", "double", "DJ"},
	} {
		sel := doc.Find(round.selector)
		if sel.Length() == 0 {
			continue
		}
		parsed, err := parseBoardRound(sel, round.name, round.tag)
		if err != nil {
			return nil, fmt.Errorf("round %s: %w", round.name, err)
		}
		game.Rounds = append(game.Rounds, *parsed)
	}

	if final := parseFinalRound(doc); final != nil {
		game.Rounds = append(game.Rounds, *final)
	}

	if len(game.Rounds) == 0 {
		return nil, errors.New("no rounds found; page is probably not a game")
	}
	return game, nil
}

func parseBoardRound(sel *goquery.Selection, name, tag string) (*ScrapedRound, error) {
	round := ScrapedRound{Name: name}

	sel.Find("td.category_name").Each(func(_ int, s *goquery.Selection) {
		round.Categories = append(round.Categories, ScrapedCategory{Name: strings.TrimSpace(s.Text())})
	})
	if len(round.Categories) == 0 {
		return nil, errors.New("no categories found")
	}

	baseValue := 200
	if tag == "DJ" {
		baseValue = 400
	}

	sel.Find("td.clue").Each(func(_ int, clue *goquery.Selection) {
		textSel := clue.Find("td.clue_text").First()
		id, ok := textSel.Attr("id")
		if !ok {
			return // empty cell, clue never revealed
		}
		m := cluePosRe.FindStringSubmatch(id)
		if m == nil {
			return
		}
		col, _ := strconv.Atoi(m[2])
		row, _ := strconv.Atoi(m[3])
		if col < 1 || col > len(round.Categories) {
			return
		}

		answer := strings.TrimSpace(clue.Find("td.clue_text em.correct_response").Text())
		if answer == "" {
			return
		}

		// Daily doubles show a wager instead of the board value; fall back
		// to the position-derived value.
		value := row * baseValue
		rawValue := strings.TrimSpace(clue.Find("td.clue_value").Text())
		if m := valueRe.FindStringSubmatch(rawValue); m != nil {
			if v, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
				value = v
			}
		}

		round.Categories[col-1].Clues = append(round.Categories[col-1].Clues, ScrapedClue{
			Text:   strings.TrimSpace(textSel.Contents().Not("em").Text()),
			Answer: answer,
			Value:  value,
			Row:    row,
			Col:    col,
		})
	})

	return &round, nil
}

func parseFinalRound(doc *goquery.Document) *ScrapedRound {
	sel := doc.Find("#final_jeopardy_round")
	if sel.Length() == 0 {
		return nil
	}

	category := strings.TrimSpace(sel.Find("td.category_name").First().Text())
	text := strings.TrimSpace(sel.Find("td#clue_FJ").Contents().Not("em").Text())
	answer := strings.TrimSpace(sel.Find("em.correct_response").First().Text())
	if category == "" || text == "" || answer == "" {
		return nil
	}

	return &ScrapedRound{
		Name: "final",
		Categories: []ScrapedCategory{{
			Name: category,
			Clues: []ScrapedClue{{
				Text:   text,
				Answer: answer,
				Value:  0,
				Row:    1,
				Col:    1,
			}},
		}},
	}
}

var gameLinkRe = regexp.MustCompile(`game_id=(\d+)`)

// ParseSeasonGameIDs lists the game ids linked from a season page.
func ParseSeasonGameIDs(html []byte) ([]int, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, err
	}

	seen := map[int]bool{}
	var ids []int
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		m := gameLinkRe.FindStringSubmatch(href)
		if m == nil {
			return
		}
		id, err := strconv.Atoi(m[1])
		if err != nil || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	})
	return ids, nil
}

var seasonLinkRe = regexp.MustCompile(`season=([^&"]+)`)

// ParseSeasonIDs lists the season ids from the season index page.
func ParseSeasonIDs(html []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var ids []string
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || !strings.Contains(href, "showseason.php") {
			return
		}
		m := seasonLinkRe.FindStringSubmatch(href)
		if m == nil || seen[m[1]] {
			return
		}
		seen[m[1]] = true
		ids = append(ids, m[1])
	})
	return ids, nil
}
