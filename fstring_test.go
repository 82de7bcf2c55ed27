package fstring

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueUsable(t *testing.T) {
	var s Str16
	require.True(t, s.Empty())
	require.Equal(t, 0, s.Len())
	require.Equal(t, 16, s.Cap())
	require.Equal(t, 16, s.Available())
	require.False(t, s.Full())
	require.Equal(t, "", s.String())
}

func TestConstructTruncates(t *testing.T) {
	s := FromString[[9]byte]("hello world")
	require.Equal(t, 8, s.Len())
	require.Equal(t, "hello wo", s.String())
	require.True(t, s.Full())
	require.Equal(t, 0, s.Available())
}

func TestConstructFromUnitsAndRepeat(t *testing.T) {
	s := FromUnits[[17]byte]([]byte("abc"))
	require.Equal(t, "abc", s.String())

	r := Repeat[[9]byte](20, byte('x'))
	require.Equal(t, "xxxxxxxx", r.String())
	require.Equal(t, 8, r.Len())
}

func TestTerminatorInvariant(t *testing.T) {
	// The slot at Len() must hold zero after every mutation.
	var s Str8
	check := func() {
		require.EqualValues(t, 0, s.Get(s.Len()))
	}
	check()
	s.AppendString("ab")
	check()
	s.Insert(1, 'x')
	check()
	s.Erase(0, 1)
	check()
	s.Resize(6, '-')
	check()
	s.Pop()
	check()
	s.Clear()
	check()
}

func TestAppendSaturation(t *testing.T) {
	s := FromString[[11]byte]("hello")
	n := s.AppendString(" world")
	require.Equal(t, 5, n) // only " worl" fits
	require.Equal(t, "hello worl", s.String())
	require.Equal(t, 10, s.Len())

	// Reported count equals available space when overflowing.
	var v Str8
	v.AppendString("abcdef")
	avail := v.Available()
	got := v.Append([]byte("123456")...)
	require.Equal(t, avail, got)
	require.Equal(t, v.Cap(), v.Len())
}

func TestAppendRepeatAndPushPop(t *testing.T) {
	var s Str8
	require.Equal(t, 3, s.AppendRepeat(3, '*'))
	require.Equal(t, "***", s.String())
	require.Equal(t, 5, s.AppendRepeat(100, '!'))
	require.True(t, s.Full())
	require.False(t, s.Push('x'))

	require.True(t, s.Pop())
	require.Equal(t, 7, s.Len())
	require.True(t, s.Push('x'))
	require.Equal(t, "***!!!!x", s.String())

	s.Clear()
	require.False(t, s.Pop())
}

func TestAtBoundary(t *testing.T) {
	s := FromString[[17]byte]("abc")
	u, err := s.At(2)
	require.NoError(t, err)
	require.EqualValues(t, 'c', u)

	_, err = s.At(s.Len())
	require.ErrorIs(t, err, ErrIndexRange)
	_, err = s.At(-1)
	require.ErrorIs(t, err, ErrIndexRange)

	// at(length-1) always succeeds when non-empty
	_, err = s.At(s.Len() - 1)
	require.NoError(t, err)
}

func TestSetAndFrontBack(t *testing.T) {
	s := FromString[[9]byte]("abc")
	require.NoError(t, s.Set(0, 'A'))
	require.ErrorIs(t, s.Set(3, 'x'), ErrIndexRange)
	require.EqualValues(t, 'A', s.Front())
	require.EqualValues(t, 'c', s.Back())
}

func TestInsert(t *testing.T) {
	s := FromString[[17]byte]("helloworld")
	n := s.Insert(5, ' ')
	require.Equal(t, 1, n)
	require.Equal(t, "hello world", s.String())

	// Insert past length is a no-op.
	require.Equal(t, 0, s.Insert(s.Len()+1, 'x'))
	require.Equal(t, "hello world", s.String())

	// Insert at length behaves like append.
	s.Insert(s.Len(), '!')
	require.Equal(t, "hello world!", s.String())
}

func TestInsertClampedShift(t *testing.T) {
	// Full string: inserting shifts the tail off the end, never past the
	// capacity slot.
	s := FromString[[11]byte]("0123456789")
	require.True(t, s.Full())
	n := s.Insert(2, []byte("ab")...)
	require.Equal(t, 2, n)
	require.Equal(t, "01ab234567", s.String())
	require.Equal(t, 10, s.Len())

	// Insertion bigger than the room between index and capacity clamps.
	v := FromString[[9]byte]("abcd")
	n = v.Insert(6, 'x') // index past length
	require.Equal(t, 0, n)
	n = v.Insert(4, []byte("0123456789")...)
	require.Equal(t, 4, n)
	require.Equal(t, "abcd0123", v.String())
}

func TestErase(t *testing.T) {
	s := FromString[[17]byte]("hello world")
	require.Equal(t, 1, s.Erase(5, 1))
	require.Equal(t, "helloworld", s.String())

	// Negative count erases the rest.
	require.Equal(t, 5, s.Erase(5, -1))
	require.Equal(t, "hello", s.String())

	// Count beyond the tail clamps.
	require.Equal(t, 3, s.Erase(2, 100))
	require.Equal(t, "he", s.String())

	// Erasing at or past length is a no-op.
	require.Equal(t, 0, s.Erase(2, 1))
	require.Equal(t, 0, s.Erase(50, 1))
	require.Equal(t, "he", s.String())
}

func TestReplace(t *testing.T) {
	s := FromString[[17]byte]("hello world")
	n := s.Replace(6, 5, []byte("there"))
	require.Equal(t, 5, n)
	require.Equal(t, "hello there", s.String())

	// Composite saturates like erase+insert done by hand.
	v := FromString[[9]byte]("aabbccdd")
	v.Replace(2, 2, []byte("0123456789"))
	require.Equal(t, "aa012345", v.String())
}

func TestResizeAndTruncate(t *testing.T) {
	var s Str16
	s.AssignString("abc")
	s.Resize(6, '.')
	require.Equal(t, "abc...", s.String())
	s.Resize(2, '.')
	require.Equal(t, "ab", s.String())
	s.Resize(100, 'x')
	require.Equal(t, 16, s.Len())

	s.Truncate(3)
	require.Equal(t, "abx", s.String())
	s.Truncate(50)
	require.Equal(t, "abx", s.String())
}

func TestSwap(t *testing.T) {
	a := FromString[[17]byte]("left")
	b := FromString[[17]byte]("right")
	a.Swap(&b)
	require.Equal(t, "right", a.String())
	require.Equal(t, "left", b.String())
}

func TestConvertCrossCapacity(t *testing.T) {
	long := FromString[[33]byte]("a somewhat longer value")
	short := Convert[[9]byte](&long)
	require.Equal(t, "a somewh", short.String())

	wide := Convert[[65]byte](&short)
	require.Equal(t, "a somewh", wide.String())
}

func TestConcatAndSubstr(t *testing.T) {
	a := FromString[[9]byte]("hello ")
	b := FromString[[9]byte]("world")
	c := Concat[[17]byte](&a, &b)
	require.Equal(t, "hello world", c.String())

	// Result capacity still clamps.
	d := Concat[[9]byte](&a, &b)
	require.Equal(t, "hello wo", d.String())

	sub := Substr[[9]byte](&c, 6, 5)
	require.Equal(t, "world", sub.String())
	sub = Substr[[9]byte](&c, 6, -1)
	require.Equal(t, "world", sub.String())
	empty := Substr[[9]byte](&c, 100, 2)
	require.True(t, empty.Empty())
}

func TestFind(t *testing.T) {
	s := FromString[[21]byte]("hello world")
	require.Equal(t, 6, s.Index([]byte("world")))
	require.Equal(t, -1, s.Index([]byte("xyz")))
	require.Equal(t, 4, s.IndexUnit('o'))
	require.Equal(t, 7, s.IndexUnitFrom('o', 5))
	require.Equal(t, 7, s.LastIndexUnit('o'))
	require.Equal(t, 4, s.LastIndexUnitFrom('o', 6))
	require.Equal(t, -1, s.IndexUnit('z'))

	// Empty needle matches at from, or fails past the end.
	require.Equal(t, 3, s.IndexFrom(nil, 3))
	require.Equal(t, -1, s.IndexFrom(nil, s.Len()+1))
}

func TestPrefixSuffixContains(t *testing.T) {
	s := FromString[[21]byte]("hello world")
	assert.True(t, s.HasPrefix([]byte("hello")))
	assert.False(t, s.HasPrefix([]byte("world")))
	assert.True(t, s.HasSuffix([]byte("world")))
	assert.False(t, s.HasSuffix([]byte("hello")))
	assert.True(t, s.Contains([]byte("lo wo")))
	assert.False(t, s.Contains([]byte("lo wx")))
	assert.True(t, s.ContainsUnit(' '))
	assert.Equal(t, 3, s.CountUnit('l'))
}

func TestCompare(t *testing.T) {
	a := FromString[[9]byte]("abc")
	b := FromString[[17]byte]("abd")
	require.Equal(t, -1, Compare(&a, &b))
	require.Equal(t, 1, Compare(&b, &a))

	// Shorter sorts first when prefixes match.
	c := FromString[[17]byte]("ab")
	require.Equal(t, 1, Compare(&a, &c))
	require.Equal(t, -1, Compare(&c, &a))

	d := FromString[[33]byte]("abc")
	require.Equal(t, 0, Compare(&a, &d))
	require.True(t, Equal(&a, &d))
	require.False(t, Equal(&a, &b))

	require.True(t, a.EqualString("abc"))
	require.False(t, a.EqualString("abcd"))
	require.True(t, a.EqualUnits([]byte("abc")))
	require.Equal(t, -1, a.CompareUnits([]byte("b")))
}

func TestHashContentBased(t *testing.T) {
	a := FromString[[9]byte]("key")
	b := FromString[[129]byte]("key")
	require.Equal(t, a.Hash(), b.Hash())

	c := FromString[[9]byte]("kez")
	require.NotEqual(t, a.Hash(), c.Hash())

	var empty Str8
	require.Equal(t, uint64(14695981039346656037), empty.Hash())
}

func TestValueEqualityAndMapKey(t *testing.T) {
	// Same content reached through different mutation histories must be ==,
	// so vacated slots have to stay zeroed.
	a := FromString[[17]byte]("abcdef")
	a.Erase(3, -1)
	b := FromString[[17]byte]("abc")
	require.Equal(t, b, a)

	m := map[Str16]int{}
	m[a] = 1
	m[b] = 2
	require.Len(t, m, 1)
	require.Equal(t, 2, m[FromString[[17]byte]("abc")])
}

func TestRuneAndUTF16Units(t *testing.T) {
	r := FromUnits[[9]rune]([]rune("héllo"))
	require.Equal(t, 5, r.Len())
	require.Equal(t, "héllo", r.String())

	w := FromUnits[[9]uint16]([]uint16{'h', 'i'})
	require.Equal(t, "hi", w.String())
	require.Equal(t, 8, w.Cap())
}

func TestAppendTo(t *testing.T) {
	s := FromString[[9]byte]("def")
	out := s.AppendTo([]byte("abc"))
	require.Equal(t, []byte("abcdef"), out)

	// Result is a copy, not a view.
	out[3] = 'D'
	require.Equal(t, "def", s.String())
}

func TestUnitsViewAliases(t *testing.T) {
	s := FromString[[9]byte]("abc")
	us := s.Units()
	us[0] = 'A'
	require.Equal(t, "Abc", s.String())
}

func TestAssignOverwrites(t *testing.T) {
	s := FromString[[9]byte]("longest!")
	s.AssignString("ab")
	require.Equal(t, "ab", s.String())
	// Old tail must not leak back in through equality.
	require.Equal(t, FromString[[9]byte]("ab"), s)

	s.Assign([]byte("0123456789"))
	require.Equal(t, "01234567", s.String())
}

func TestQuickLengthInvariant(t *testing.T) {
	condition := func(src []byte) bool {
		s := FromUnits[[33]byte](src)
		want := min(len(src), 32)
		return s.Len() == want && s.Get(s.Len()) == 0
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestQuickAppendCount(t *testing.T) {
	condition := func(head, tail []byte) bool {
		var s Str32
		s.Append(head...)
		avail := s.Available()
		got := s.Append(tail...)
		return got == min(avail, len(tail)) && s.Len() <= s.Cap()
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func FuzzMutations(f *testing.F) {
	f.Add("hello", " world", 2, 3)
	f.Add("", "x", 0, 0)
	f.Fuzz(func(t *testing.T, base, extra string, index, count int) {
		var s Str32
		s.AssignString(base)
		s.InsertString(index%64, extra)
		s.Erase(index%64, count%64)
		require.LessOrEqual(t, s.Len(), s.Cap())
		require.EqualValues(t, 0, s.Get(s.Len()))
	})
}
