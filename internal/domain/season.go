package domain

// Season 季节标签
type Season string

const (
	SeasonWinter Season = "Winter"
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonFall   Season = "Fall"
)

var Seasons = []Season{SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall}

// monthSeasons 固定的 12 项 月→季节 查表
// 月序 0,1 → Winter；2-4 → Spring；5-7 → Summer；8-10 → Fall；11 → Winter
var monthSeasons = [12]Season{
	SeasonWinter, SeasonWinter,
	SeasonSpring, SeasonSpring, SeasonSpring,
	SeasonSummer, SeasonSummer, SeasonSummer,
	SeasonFall, SeasonFall, SeasonFall,
	SeasonWinter,
}

// SeasonForMonth 月序（从 0 起，可超过 11，按年循环）对应的季节
func SeasonForMonth(monthIndex int) Season {
	if monthIndex < 0 {
		monthIndex = 0
	}
	return monthSeasons[monthIndex%12]
}
