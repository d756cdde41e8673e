package tnetstr

// Tag is the single ASCII byte trailing a frame's payload, identifying the
// wire type of the frame.
type Tag byte

const (
	TagString  Tag = ','
	TagInteger Tag = '#'
	TagFloat   Tag = '^'
	TagBool    Tag = '!'
	TagNull    Tag = '~'
	TagDict    Tag = '}'
	TagList    Tag = ']'
)

func (t Tag) String() string {
	switch t {
	case TagString:
		return "string"
	case TagInteger:
		return "integer"
	case TagFloat:
		return "float"
	case TagBool:
		return "bool"
	case TagNull:
		return "null"
	case TagDict:
		return "dict"
	case TagList:
		return "list"
	}
	return "invalid"
}
