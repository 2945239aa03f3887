package models

// BusyLevel describes how continuously a workshop operates
type BusyLevel int

const (
	BusyLevelContinuous   BusyLevel = 1
	BusyLevelNormal       BusyLevel = 2
	BusyLevelIntermittent BusyLevel = 3
	BusyLevelIdle         BusyLevel = 4
)

// ImportanceLevel classifies a component: A=core, B=normal, C=unimportant
type ImportanceLevel string

const (
	ImportanceLevelCore        ImportanceLevel = "A"
	ImportanceLevelNormal      ImportanceLevel = "B"
	ImportanceLevelUnimportant ImportanceLevel = "C"
)

// String returns the display name of the BusyLevel
func (b BusyLevel) String() string {
	switch b {
	case BusyLevelContinuous:
		return "continuous"
	case BusyLevelNormal:
		return "normal"
	case BusyLevelIntermittent:
		return "intermittent"
	case BusyLevelIdle:
		return "idle"
	}
	return "unknown"
}

// IsValid checks if the BusyLevel is valid
func (b BusyLevel) IsValid() bool {
	return b >= BusyLevelContinuous && b <= BusyLevelIdle
}

// IsValid checks if the ImportanceLevel is valid
func (l ImportanceLevel) IsValid() bool {
	switch l {
	case ImportanceLevelCore, ImportanceLevelNormal, ImportanceLevelUnimportant:
		return true
	}
	return false
}
