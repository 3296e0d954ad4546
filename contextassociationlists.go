/*
DESCRIPTION
  contextassociationlists.go implements the ContextAssociationLists
  sub-struct: a two-word header of list-size counts followed by that many
  stream-id words per list. All-zero (empty) lists are valid.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import "github.com/ausocean/vita49/internal/bitio"

const contextAssocTagListPresentBit = 15

// ContextAssociationLists is the variable-length sub-struct naming other
// stream ids a context packet's stream is related to.
type ContextAssociationLists struct {
	SourceList           []uint32 // 10-bit count.
	SystemList           []uint32 // 10-bit count.
	VectorComponentList  []uint32 // 16-bit count.
	AsyncChannelList     []uint32 // 9-bit count.
	AsyncChannelTagList  []uint32 // present iff non-nil; same length as AsyncChannelList.
}

// SizeWords is the total wire size: the two header words plus one word per
// listed stream id.
func (c ContextAssociationLists) SizeWords() int {
	n := 2 + len(c.SourceList) + len(c.SystemList) + len(c.VectorComponentList) + len(c.AsyncChannelList)
	if c.AsyncChannelTagList != nil {
		n += len(c.AsyncChannelTagList)
	}
	return n
}

// Encode appends c's wire words to w.
func (c ContextAssociationLists) Encode(w *bitio.Writer) error {
	word1 := uint32(len(c.SourceList)&0x3ff)<<16 | uint32(len(c.SystemList)&0x3ff)
	word2 := uint32(len(c.VectorComponentList)&0xffff)<<16 | uint32(len(c.AsyncChannelList)&0x1ff)
	if c.AsyncChannelTagList != nil {
		word2 |= 1 << contextAssocTagListPresentBit
	}
	if err := w.WriteWord(word1); err != nil {
		return err
	}
	if err := w.WriteWord(word2); err != nil {
		return err
	}
	for _, lists := range [][]uint32{c.SourceList, c.SystemList, c.VectorComponentList, c.AsyncChannelList} {
		if err := w.WriteWords(lists); err != nil {
			return err
		}
	}
	if c.AsyncChannelTagList != nil {
		if err := w.WriteWords(c.AsyncChannelTagList); err != nil {
			return err
		}
	}
	return nil
}

// ParseContextAssociationLists decodes a ContextAssociationLists from r.
func ParseContextAssociationLists(r *bitio.Reader) (ContextAssociationLists, error) {
	word1, err := r.ReadWord()
	if err != nil {
		return ContextAssociationLists{}, err
	}
	word2, err := r.ReadWord()
	if err != nil {
		return ContextAssociationLists{}, err
	}
	sourceN := int(word1 >> 16 & 0x3ff)
	systemN := int(word1 & 0x3ff)
	vectorN := int(word2 >> 16)
	asyncN := int(word2 & 0x1ff)
	tagsPresent := word2>>contextAssocTagListPresentBit&0x1 == 1

	var c ContextAssociationLists
	if c.SourceList, err = r.ReadWords(sourceN); err != nil {
		return ContextAssociationLists{}, err
	}
	if c.SystemList, err = r.ReadWords(systemN); err != nil {
		return ContextAssociationLists{}, err
	}
	if c.VectorComponentList, err = r.ReadWords(vectorN); err != nil {
		return ContextAssociationLists{}, err
	}
	if c.AsyncChannelList, err = r.ReadWords(asyncN); err != nil {
		return ContextAssociationLists{}, err
	}
	if tagsPresent {
		if c.AsyncChannelTagList, err = r.ReadWords(asyncN); err != nil {
			return ContextAssociationLists{}, err
		}
	}
	return c, nil
}
