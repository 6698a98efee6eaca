package match

import "github.com/mozillazg/go-pinyin"

// Pinyin transliterates Chinese characters to toneless Hanyu Pinyin
// syllables, one per character. Characters without a reading are dropped.
type Pinyin struct {
	args pinyin.Args
}

// NewPinyin returns a Pinyin transliterator.
func NewPinyin() *Pinyin {
	args := pinyin.NewArgs()
	args.Style = pinyin.Normal
	args.Heteronym = false
	return &Pinyin{args: args}
}

// Transliterate implements Transliterator.
func (p *Pinyin) Transliterate(s string) []string {
	return pinyin.LazyPinyin(s, p.args)
}
