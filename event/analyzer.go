package event

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Analysis is the per-option result of matching reward text against the
// priority phrase lists.
type Analysis struct {
	Label       string
	RewardText  string
	GoodMatches []string
	BadMatches  []string
	HasGood     bool
	HasBad      bool
}

// Recommendation is the overall outcome for one event.
type Recommendation struct {
	Options       []Analysis
	AllOptionsBad bool
	Recommended   string
	Reason        string
}

var optionNumberRe = regexp.MustCompile(`option\s*(\d+)`)

// labelRank orders option labels in on-screen click order.
func labelRank(label string) int {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "top"):
		return 0
	case strings.Contains(l, "middle"):
		return 1
	case strings.Contains(l, "bottom"):
		return 2
	}
	if m := optionNumberRe.FindStringSubmatch(l); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return 2 + n
		}
	}
	return 100
}

// sortedLabels returns the option labels in canonical screen order so
// analysis iterates deterministically regardless of map layout.
func sortedLabels(options map[string]string) []string {
	labels := make([]string, 0, len(options))
	for label := range options {
		labels = append(labels, label)
	}
	sort.SliceStable(labels, func(i, j int) bool {
		ri, rj := labelRank(labels[i]), labelRank(labels[j])
		if ri != rj {
			return ri < rj
		}
		return labels[i] < labels[j]
	})
	return labels
}

// normalizeReward flattens embedded line breaks so reward text matches
// and displays as a single line.
func normalizeReward(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

var digitRuns = regexp.MustCompile(`\d+`)

// normalizeForMatch lowercases, blanks out digits and squeezes
// whitespace. Reward amounts vary per event, so "Lose Energy" has to hit
// "Lose 5 Energy" and "Lose 20 Energy" alike.
func normalizeForMatch(text string) string {
	return strings.Join(strings.Fields(digitRuns.ReplaceAllString(strings.ToLower(text), " ")), " ")
}

// Analyze classifies every option against the priority lists and picks a
// recommendation. An empty Recommended means nothing qualified and the
// caller should take the first choice.
func Analyze(options map[string]string, prio Priorities) Recommendation {
	rec := Recommendation{}
	for _, label := range sortedLabels(options) {
		reward := normalizeReward(options[label])
		a := Analysis{Label: label, RewardText: reward}
		matchable := normalizeForMatch(reward)
		for _, phrase := range prio.GoodChoices {
			if p := normalizeForMatch(phrase); p != "" && strings.Contains(matchable, p) {
				a.GoodMatches = append(a.GoodMatches, phrase)
			}
		}
		for _, phrase := range prio.BadChoices {
			if p := normalizeForMatch(phrase); p != "" && strings.Contains(matchable, p) {
				a.BadMatches = append(a.BadMatches, phrase)
			}
		}
		a.HasGood = len(a.GoodMatches) > 0
		a.HasBad = len(a.BadMatches) > 0
		rec.Options = append(rec.Options, a)
	}
	if len(rec.Options) == 0 {
		rec.Reason = "no options to analyze"
		return rec
	}

	rec.AllOptionsBad = true
	for _, a := range rec.Options {
		if !a.HasBad {
			rec.AllOptionsBad = false
			break
		}
	}

	if rec.AllOptionsBad {
		if best := bestByGoodPriority(rec.Options, prio, func(a Analysis) bool { return a.HasGood }); best != nil {
			rec.Recommended = best.Label
			rec.Reason = fmt.Sprintf("every option has a downside, %q still gives %q", best.Label, best.GoodMatches[0])
		} else {
			rec.Reason = "every option is bad with no upside"
		}
		return rec
	}

	if best := bestByGoodPriority(rec.Options, prio, func(a Analysis) bool { return a.HasGood && !a.HasBad }); best != nil {
		rec.Recommended = best.Label
		rec.Reason = fmt.Sprintf("%q gives %q with no downside", best.Label, best.GoodMatches[0])
		return rec
	}

	// No clean candidate: least-bad option, first-encountered on ties.
	bestPos := 0
	for i := 1; i < len(rec.Options); i++ {
		if len(rec.Options[i].BadMatches) < len(rec.Options[bestPos].BadMatches) {
			bestPos = i
		}
	}
	rec.Recommended = rec.Options[bestPos].Label
	rec.Reason = fmt.Sprintf("no clean option, %q has the fewest downsides", rec.Options[bestPos].Label)
	return rec
}

// bestByGoodPriority picks, among eligible options, the one whose best
// good-phrase match sits earliest in the priority list. Strict
// comparison keeps the first-encountered option on ties.
func bestByGoodPriority(options []Analysis, prio Priorities, eligible func(Analysis) bool) *Analysis {
	var best *Analysis
	bestIdx := 0
	for i := range options {
		a := &options[i]
		if !a.HasGood || !eligible(*a) {
			continue
		}
		idx := phraseIndex(prio.GoodChoices, a.GoodMatches[0])
		if best == nil || idx < bestIdx {
			best = a
			bestIdx = idx
		}
	}
	return best
}

func phraseIndex(phrases []string, phrase string) int {
	for i, p := range phrases {
		if p == phrase {
			return i
		}
	}
	return len(phrases)
}

// ChoiceNumber maps an option label onto the 1-based on-screen choice
// index out of n detected choices. Two- and three-choice events use the
// positional words; bigger menus carry numbered labels. Anything that
// points past the visible choices falls back to the first one.
func ChoiceNumber(label string, n int) int {
	if n <= 0 {
		return 1
	}
	l := strings.ToLower(label)
	idx := 0
	if n <= 3 {
		switch {
		case strings.Contains(l, "top"):
			idx = 1
		case strings.Contains(l, "middle"):
			idx = 2
		case strings.Contains(l, "bottom"):
			idx = n
		}
	}
	if idx == 0 {
		if m := optionNumberRe.FindStringSubmatch(l); m != nil {
			idx, _ = strconv.Atoi(m[1])
		}
	}
	if idx < 1 || idx > n {
		return 1
	}
	return idx
}
