package validator

import (
	"maps"
	"slices"
)

// Definition is a registry entry. RawParams marks rules that receive their
// parameter substring unsplit, because commas are meaningful inside it.
type Definition struct {
	New       Constructor
	RawParams bool
}

// Registry maps rule names to definitions.
type Registry map[string]Definition

// Names returns the registered rule names in lexical order.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}

// defaultRegistry is the built-in catalogue. It is never mutated after
// package initialisation.
var defaultRegistry = Registry{
	"required": {New: newRequired},
	"accepted": {New: newAccepted},
	"switch":   {New: newSwitch},
	"boolean":  {New: newBoolean},

	"alphabet":        {New: predicate("{VALUE} of {FIELD} is not alphabet", isAlphabet)},
	"alpha_dash":      {New: predicate("{VALUE} of {FIELD} should only contain letters, numbers, dashes and underscores", isAlphaDash)},
	"alpha_number":    {New: predicate("{VALUE} of {FIELD} should only contain letters and numbers", isAlphaNumber)},
	"digits":          {New: predicate("{VALUE} of {FIELD} is not digits", isDigits)},
	"numeric":         {New: predicate("{VALUE} of {FIELD} is not numeric", isNumeric)},
	"numberic":        {New: predicate("{VALUE} of {FIELD} is not numeric", isNumeric)},
	"email":           {New: predicate("{VALUE} of {FIELD} is not an email address", isEmail)},
	"ids":             {New: predicate("{VALUE} of {FIELD} is not a id series", isIDs)},
	"cellphone":       {New: predicate("{VALUE} of {FIELD} is not a cellphone number", isCellphone)},
	"username":        {New: predicate("{VALUE} of {FIELD} is not a valid username", isUsername)},
	"ascii":           {New: predicate("{VALUE} of {FIELD} is not ascii", isASCII)},
	"printable_ascii": {New: predicate("{VALUE} of {FIELD} is not printable ascii", isPrintableASCII)},
	"printable-ascii": {New: predicate("{VALUE} of {FIELD} is not printable ascii", isPrintableASCII)},
	"pascii":          {New: predicate("{VALUE} of {FIELD} is not printable ascii", isPrintableASCII)},
	"uuid":            {New: predicate("{VALUE} of {FIELD} is not a valid uuid", isUUID)},
	"regex":           {New: newRegex, RawParams: true},

	"min_length": {New: newMinLength},
	"max_length": {New: newMaxLength},
	"between":    {New: newBetween},
	"size":       {New: newSize},
	"min":        {New: newMin},
	"max":        {New: newMax},

	"date":              {New: newDate},
	"date_before":       {New: newDateCompare(dateBefore)},
	"date_after":        {New: newDateCompare(dateAfter)},
	"date_before_equal": {New: newDateCompare(dateBeforeEqual)},
	"date_after_equal":  {New: newDateCompare(dateAfterEqual)},
	"date_range":        {New: newDateRange(false)},

	"datetime":              {New: newDatetime},
	"datetime_before":       {New: newDateCompare(datetimeBefore)},
	"datetime_after":        {New: newDateCompare(datetimeAfter)},
	"datetime_before_equal": {New: newDateCompare(datetimeBeforeEqual)},
	"datetime_after_equal":  {New: newDateCompare(datetimeAfterEqual)},
	"datetime_range":        {New: newDateRange(true)},

	"same":      {New: newSame},
	"different": {New: newDifferent},
	"confirmed": {New: newConfirmed},

	"unique":         {New: newUnique},
	"exist":          {New: newExist},
	"unique_against": {New: newUniqueAgainst},

	"active_url": {New: newActiveURL},

	"file":       {New: newFile},
	"image":      {New: newFileKind(imageKind)},
	"video":      {New: newFileKind(videoKind)},
	"audio":      {New: newFileKind(audioKind)},
	"attachment": {New: newFileKind(attachmentKind)},
}

// DefaultRegistry returns a copy of the built-in catalogue. Modifying the
// copy does not affect validators.
func DefaultRegistry() Registry {
	return maps.Clone(defaultRegistry)
}

// Resolve finds the definition for name. overrides is consulted first, then
// the built-in catalogue.
func Resolve(name string, overrides Registry) (Definition, error) {
	if def, ok := overrides[name]; ok && def.New != nil {
		return def, nil
	}
	if def, ok := defaultRegistry[name]; ok {
		return def, nil
	}
	return Definition{}, &RuleNotFoundError{Name: name}
}

// ruleSet binds a run-scoped override map to one validator.
type ruleSet struct {
	overrides Registry
	exclusive bool
}

func (r ruleSet) resolve(name string) (Definition, error) {
	if r.exclusive {
		if def, ok := r.overrides[name]; ok && def.New != nil {
			return def, nil
		}
		return Definition{}, &RuleNotFoundError{Name: name}
	}
	return Resolve(name, r.overrides)
}
