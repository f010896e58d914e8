package engine

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ActivityID string

const (
	ActivityEating   ActivityID = "eating"
	ActivityBathing  ActivityID = "bathing"
	ActivityDressing ActivityID = "dressing"
	ActivityBrushing ActivityID = "brushing"
	ActivityYoga     ActivityID = "yoga"
	ActivitySleeping ActivityID = "sleeping"
	ActivityLearning ActivityID = "learning"
	ActivityMusic    ActivityID = "music"
)

// Activities lists the catalog in display order.
var Activities = []ActivityID{
	ActivityEating,
	ActivityBathing,
	ActivityDressing,
	ActivityBrushing,
	ActivityYoga,
	ActivitySleeping,
	ActivityLearning,
	ActivityMusic,
}

func (a ActivityID) IsValid() bool {
	_, ok := guides[a]
	return ok
}

// DisplayName is the capitalized activity name ("Eating").
func (a ActivityID) DisplayName() string {
	// Casers are stateful; one per call.
	return cases.Title(language.English).String(string(a))
}

// Guide is the static, ordered instruction list for one activity.
type Guide struct {
	Activity ActivityID
	Title    string
	Steps    []string
}

var guides = map[ActivityID]Guide{
	ActivityEating: {
		Activity: ActivityEating,
		Title:    "Eating Guide",
		Steps: []string{
			"Sit comfortably at the table",
			"Use proper utensils",
			"Take small bites",
			"Chew slowly and carefully",
			"Drink water between bites",
		},
	},
	ActivityBathing: {
		Activity: ActivityBathing,
		Title:    "Bathing Guide",
		Steps: []string{
			"Check water temperature",
			"Use mild soap",
			"Wash from top to bottom",
			"Rinse thoroughly",
			"Dry carefully",
		},
	},
	ActivityDressing: {
		Activity: ActivityDressing,
		Title:    "Dressing Guide",
		Steps: []string{
			"Gather your clothes",
			"Put on undergarments",
			"Put on shirt/top",
			"Put on pants/bottom",
			"Put on socks and shoes",
		},
	},
	ActivityBrushing: {
		Activity: ActivityBrushing,
		Title:    "Brushing Guide",
		Steps: []string{
			"Wet your toothbrush",
			"Apply toothpaste",
			"Brush all teeth surfaces",
			"Brush your tongue",
			"Rinse your mouth",
		},
	},
	ActivityYoga: {
		Activity: ActivityYoga,
		Title:    "Yoga Guide",
		Steps: []string{
			"Find a quiet space",
			"Lay out your mat",
			"Take deep breaths",
			"Follow simple poses",
			"Relax and stretch",
		},
	},
	ActivitySleeping: {
		Activity: ActivitySleeping,
		Title:    "Sleeping Guide",
		Steps: []string{
			"Put on pajamas",
			"Brush teeth",
			"Use the bathroom",
			"Get into bed",
			"Close your eyes",
		},
	},
	ActivityLearning: {
		Activity: ActivityLearning,
		Title:    "Learning Guide",
		Steps: []string{
			"Sit at your desk",
			"Open your books",
			"Read carefully",
			"Take notes",
			"Practice exercises",
		},
	},
	ActivityMusic: {
		Activity: ActivityMusic,
		Title:    "Music Guide",
		Steps: []string{
			"Choose your instrument",
			"Sit properly",
			"Follow the rhythm",
			"Practice notes",
			"Make music!",
		},
	},
}

// GuideFor returns a copy of the guide for a; ok is false for unknown activities.
func GuideFor(a ActivityID) (Guide, bool) {
	g, ok := guides[a]
	if !ok {
		return Guide{}, false
	}
	g.Steps = append([]string(nil), g.Steps...)
	return g, true
}
