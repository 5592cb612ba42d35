package scraper

import (
	"testing"
	"time"
)

const gameFixture = `<!DOCTYPE html>
<html><body>
<div id="game_title"><h1>Show #4350 - Monday, July 26, 2004</h1></div>
<div id="jeopardy_round">
  <table class="round">
    <tr>
      <td class="category"><table><tr><td class="category_name">U.S. PRESIDENTS</td></tr></table></td>
      <td class="category"><table><tr><td class="category_name">RIVERS</td></tr></table></td>
    </tr>
    <tr>
      <td class="clue">
        <table><tr><td class="clue_value">$200</td></tr>
        <tr><td class="clue_text" id="clue_J_1_1">He was the first president</td></tr>
        <tr><td class="clue_text" id="clue_J_1_1_r"><em class="correct_response">George Washington</em></td></tr></table>
      </td>
      <td class="clue">
        <table><tr><td class="clue_value_daily_double">DD: $1,000</td></tr>
        <tr><td class="clue_text" id="clue_J_2_1">The longest river in Africa</td></tr>
        <tr><td class="clue_text" id="clue_J_2_1_r"><em class="correct_response">the Nile</em></td></tr></table>
      </td>
    </tr>
    <tr>
      <td class="clue">
        <table><tr><td class="clue_value">$400</td></tr>
        <tr><td class="clue_text" id="clue_J_1_2">He wrote the Declaration of Independence</td></tr>
        <tr><td class="clue_text" id="clue_J_1_2_r"><em class="correct_response">Thomas Jefferson</em></td></tr></table>
      </td>
      <td class="clue"></td>
    </tr>
  </table>
</div>
<div id="double_jeopardy_round">
  <table class="round">
    <tr>
      <td class="category"><table><tr><td class="category_name">OPERA</td></tr></table></td>
    </tr>
    <tr>
      <td class="clue">
        <table><tr><td class="clue_value">$800</td></tr>
        <tr><td class="clue_text" id="clue_DJ_1_2">Composer of La Traviata</td></tr>
        <tr><td class="clue_text" id="clue_DJ_1_2_r"><em class="correct_response">Verdi</em></td></tr></table>
      </td>
    </tr>
  </table>
</div>
<div id="final_jeopardy_round">
  <table class="final_round">
    <tr><td class="category"><table><tr><td class="category_name">WORLD CAPITALS</td></tr></table></td></tr>
  </table>
  <table><tr><td id="clue_FJ" class="clue_text">This city on two continents</td></tr>
  <tr><td id="clue_FJ_r" class="clue_text"><em class="correct_response">Istanbul</em></td></tr></table>
</div>
</body></html>`

func TestParseGame(t *testing.T) {
	game, err := ParseGame([]byte(gameFixture), 4350)
	if err != nil {
		t.Fatalf("ParseGame: %v", err)
	}

	if game.GameID != 4350 {
		t.Errorf("game id = %d, want 4350", game.GameID)
	}
	if game.ShowNum != 4350 {
		t.Errorf("show num = %d, want 4350", game.ShowNum)
	}
	wantDate := time.Date(2004, time.July, 26, 0, 0, 0, 0, time.UTC)
	if game.AirDate == nil || !game.AirDate.Equal(wantDate) {
		t.Errorf("air date = %v, want %v", game.AirDate, wantDate)
	}

	if len(game.Rounds) != 3 {
		t.Fatalf("rounds = %d, want 3", len(game.Rounds))
	}

	j := game.Rounds[0]
	if j.Name != "jeopardy" {
		t.Errorf("first round = %q, want jeopardy", j.Name)
	}
	if len(j.Categories) != 2 {
		t.Fatalf("jeopardy categories = %d, want 2", len(j.Categories))
	}
	if j.Categories[0].Name != "U.S. PRESIDENTS" {
		t.Errorf("category = %q", j.Categories[0].Name)
	}
	if len(j.Categories[0].Clues) != 2 {
		t.Fatalf("presidents clues = %d, want 2", len(j.Categories[0].Clues))
	}

	first := j.Categories[0].Clues[0]
	if first.Text != "He was the first president" {
		t.Errorf("clue text = %q", first.Text)
	}
	if first.Answer != "George Washington" {
		t.Errorf("clue answer = %q", first.Answer)
	}
	if first.Value != 200 {
		t.Errorf("clue value = %d, want 200", first.Value)
	}

	// Daily double wagers fall back to the board position value.
	dd := j.Categories[1].Clues[0]
	if dd.Answer != "the Nile" {
		t.Errorf("daily double answer = %q", dd.Answer)
	}
	if dd.Value != 200 {
		t.Errorf("daily double value = %d, want position value 200", dd.Value)
	}

	dj := game.Rounds[1]
	if dj.Name != "double" || len(dj.Categories) != 1 {
		t.Fatalf("double round malformed: %+v", dj)
	}
	if dj.Categories[0].Clues[0].Value != 800 {
		t.Errorf("double clue value = %d, want 800", dj.Categories[0].Clues[0].Value)
	}

	final := game.Rounds[2]
	if final.Name != "final" {
		t.Fatalf("last round = %q, want final", final.Name)
	}
	fj := final.Categories[0]
	if fj.Name != "WORLD CAPITALS" {
		t.Errorf("final category = %q", fj.Name)
	}
	if fj.Clues[0].Answer != "Istanbul" {
		t.Errorf("final answer = %q", fj.Clues[0].Answer)
	}
}

func TestParseGameRejectsNonGamePage(t *testing.T) {
	if _, err := ParseGame([]byte("<html><body><p>error</p></body></html>"), 1); err == nil {
		t.Error("expected an error for a page without rounds")
	}
}

func TestParseSeasonGameIDs(t *testing.T) {
	html := `<html><body>
	<a href="showgame.php?game_id=4350">#4350</a>
	<a href="showgame.php?game_id=4351">#4351</a>
	<a href="showgame.php?game_id=4350">#4350 again</a>
	<a href="help.php">help</a>
	</body></html>`

	ids, err := ParseSeasonGameIDs([]byte(html))
	if err != nil {
		t.Fatalf("ParseSeasonGameIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != 4350 || ids[1] != 4351 {
		t.Errorf("ids = %v, want [4350 4351]", ids)
	}
}

func TestParseSeasonIDs(t *testing.T) {
	html := `<html><body>
	<a href="showseason.php?season=20">Season 20</a>
	<a href="showseason.php?season=superjeopardy">Super Jeopardy!</a>
	<a href="showgame.php?game_id=1">game</a>
	</body></html>`

	ids, err := ParseSeasonIDs([]byte(html))
	if err != nil {
		t.Fatalf("ParseSeasonIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != "20" || ids[1] != "superjeopardy" {
		t.Errorf("ids = %v", ids)
	}
}
