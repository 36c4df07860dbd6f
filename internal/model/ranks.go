package model

// Rank is a display title plus the cumulative XP required to hold a level
type Rank struct {
	Title    string `json:"title"`
	XPNeeded int    `json:"xp_needed"`
}

// XPPerLevelBeyondTable is the constant XP increment for levels past the
// explicitly defined rank table
const XPPerLevelBeyondTable = 1200

// rankTable maps level -> rank for the explicitly defined levels.
// Thresholds are cumulative total XP and strictly increasing.
var rankTable = map[int]Rank{
	1:  {"Rookie I", 100},
	2:  {"Rookie II", 150},
	3:  {"Rookie III", 200},
	4:  {"Rookie IV", 250},
	5:  {"Rookie V", 300},
	6:  {"Amateur I", 400},
	7:  {"Amateur II", 500},
	8:  {"Amateur III", 600},
	9:  {"Amateur IV", 700},
	10: {"Expert I", 850},
	11: {"Expert II", 1000},
	12: {"Expert III", 1200},
	13: {"Expert IV", 1400},
	14: {"Expert V", 1600},
	15: {"Master I", 1850},
	16: {"Master II", 2100},
	17: {"Master III", 2400},
	18: {"Master IV", 2700},
	19: {"Master V", 3000},
	20: {"General I", 3400},
	21: {"General II", 3800},
	22: {"General III", 4300},
	23: {"General IV", 4800},
	24: {"General V", 5400},
	25: {"Legend I", 6000},
	26: {"Legend II", 6700},
	27: {"Legend III", 7500},
	28: {"Legend IV", 8400},
	29: {"Legend V", 9400},
	30: {"Veteran", 10500},
}

const lastTableLevel = 30

// RankForLevel returns the rank for a level. Levels past the table keep the
// terminal title and grow by a constant XP increment per level.
func RankForLevel(level int) Rank {
	if level < InitialLevel {
		level = InitialLevel
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	if r, ok := rankTable[level]; ok {
		return r
	}
	base := rankTable[lastTableLevel]
	return Rank{
		Title:    base.Title,
		XPNeeded: base.XPNeeded + (level-lastTableLevel)*XPPerLevelBeyondTable,
	}
}
