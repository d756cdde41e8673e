package tnetstr

import (
	"fmt"

	"github.com/unkn0wn-root/tnetstr/internal/outbuf"
)

// Encode renders v as a single tnetstring frame.
//
// Rendering runs back to front: the tag byte lands first, then the payload,
// then ':' and the length digits. A frame's length is not known until its
// payload is rendered; writing in reverse means the digits can be laid down
// afterwards without shifting anything. One buffer per call, finalized with a
// single copy; on error nothing escapes.
func (c *Coder[V]) Encode(v V) ([]byte, error) {
	b := outbuf.New()
	if err := c.render(v, b, 0); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (c *Coder[V]) render(v V, b *outbuf.Buffer, depth int) error {
	if depth > c.maxDepth {
		return ErrTooDeep
	}
	tag, err := c.model.Classify(v)
	if err != nil {
		return err
	}
	b.PutByte(byte(tag))
	mark := b.Len()

	switch tag {
	case TagString:
		p, err := c.model.RenderString(v)
		if err != nil {
			return err
		}
		b.Put(p)
	case TagInteger, TagFloat:
		p, err := c.model.RenderNumber(v)
		if err != nil {
			return err
		}
		b.Put(p)
	case TagBool:
		p, err := c.model.RenderBool(v)
		if err != nil {
			return err
		}
		b.Put(p)
	case TagNull:
		// zero-length payload
	case TagList:
		items, err := c.model.ListItems(v)
		if err != nil {
			return err
		}
		for i := len(items) - 1; i >= 0; i-- {
			if err := c.render(items[i], b, depth+1); err != nil {
				return err
			}
		}
	case TagDict:
		pairs, err := c.model.DictPairs(v)
		if err != nil {
			return err
		}
		for i := len(pairs) - 1; i >= 0; i-- {
			// value before key: the buffer writes backwards
			if err := c.render(pairs[i].Val, b, depth+1); err != nil {
				return err
			}
			if err := c.render(pairs[i].Key, b, depth+1); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: model classified value as unknown tag %q", ErrNotSerializable, byte(tag))
	}

	n := b.Len() - mark
	b.PutByte(':')
	b.PutUint(uint64(n))
	return nil
}
