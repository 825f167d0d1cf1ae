package osc

const zero = string(byte(0))

// nulls returns a string of `i` nulls.
func nulls(i int) string {
	s := ""
	for j := 0; j < i; j++ {
		s += zero
	}
	return s
}

type testCase struct {
	name    string
	obj     Packet
	raw     []byte
	wantErr bool
}

var (
	tt1 = nulls(7) + "\x01"
	tt2 = nulls(7) + "\x02"

	rawTestInt = "/testint" + nulls(4) + ",i" + nulls(2) + "\x00\x00\x00\x01"
	rawTrigger = "/trigger" + nulls(4) + ",I" + nulls(2)
)

var messageTestCases = []testCase{
	{
		"no_arguments",
		NewMessage("/a"),
		[]byte("/a" + nulls(2) + "," + nulls(3)),
		false,
	},
	{
		"testint",
		NewMessage("/testint", Int32(1)),
		[]byte(rawTestInt),
		false,
	},
	{
		"negative_int",
		NewMessage("/i", Int32(-2)),
		[]byte("/i" + nulls(2) + ",i" + nulls(2) + "\xff\xff\xff\xfe"),
		false,
	},
	{
		"float",
		NewMessage("/f", Float32(0.5)),
		[]byte("/f" + nulls(2) + ",f" + nulls(2) + "\x3f\x00\x00\x00"),
		false,
	},
	{
		"string",
		NewMessage("/s", String("hello")),
		[]byte("/s" + nulls(2) + ",s" + nulls(2) + "hello" + nulls(3)),
		false,
	},
	{
		"empty_string",
		NewMessage("/s", String("")),
		[]byte("/s" + nulls(2) + ",s" + nulls(2) + nulls(4)),
		false,
	},
	{
		"blob_unpadded",
		NewMessage("/b", Blob{1, 2, 3}),
		[]byte("/b" + nulls(2) + ",b" + nulls(2) + "\x00\x00\x00\x03" + "\x01\x02\x03"),
		false,
	},
	{
		"empty_blob",
		NewMessage("/b", Blob{}),
		[]byte("/b" + nulls(2) + ",b" + nulls(2) + nulls(4)),
		false,
	},
	{
		"nullary",
		NewMessage("/n", True{}, False{}, Nil{}, Impulse{}),
		[]byte("/n" + nulls(2) + ",TFNI" + nulls(3)),
		false,
	},
	{
		"timetag",
		NewMessage("/t", Timetag(0x0000000100000002)),
		[]byte("/t" + nulls(2) + ",t" + nulls(2) + "\x00\x00\x00\x01\x00\x00\x00\x02"),
		false,
	},
	{
		"mixed",
		NewMessage("/mixed", Int32(-1), String("ab"), Blob{0xff}, True{}, Float32(1)),
		[]byte("/mixed" + nulls(2) + ",isbTf" + nulls(2) +
			"\xff\xff\xff\xff" +
			"ab" + nulls(2) +
			"\x00\x00\x00\x01\xff" +
			"\x3f\x80\x00\x00"),
		false,
	},
}

var bundleTestCases = []testCase{
	{
		"empty",
		NewBundleWithTimetag(1),
		[]byte("#bundle" + zero + tt1),
		false,
	},
	{
		"one_message",
		NewBundleWithTimetag(1, NewMessage("/testint", Int32(1))),
		[]byte("#bundle" + zero + tt1 + "\x00\x00\x00\x14" + rawTestInt),
		false,
	},
	{
		"two_messages",
		NewBundleWithTimetag(2, NewMessage("/testint", Int32(1)), NewMessage("/trigger", Impulse{})),
		[]byte("#bundle" + zero + tt2 +
			"\x00\x00\x00\x14" + rawTestInt +
			"\x00\x00\x00\x10" + rawTrigger),
		false,
	},
	{
		"nested",
		NewBundleWithTimetag(1,
			NewBundleWithTimetag(2,
				NewMessage("/trigger", Impulse{}))),
		[]byte("#bundle" + zero + tt1 + "\x00\x00\x00\x24" +
			"#bundle" + zero + tt2 + "\x00\x00\x00\x10" + rawTrigger),
		false,
	},
	{
		"nested_empty",
		NewBundleWithTimetag(1, NewBundleWithTimetag(2)),
		[]byte("#bundle" + zero + tt1 + "\x00\x00\x00\x10" + "#bundle" + zero + tt2),
		false,
	},
}
