package status

import (
	"math"
	"slices"
	"sync"
	"testing"
)

func TestTableStrictlyAscending(t *testing.T) {
	if len(table) != len(wantPhrases) {
		t.Fatalf("expected %d entries, got %d", len(wantPhrases), len(table))
	}
	for i := 1; i < len(table); i++ {
		if table[i-1].Code >= table[i].Code {
			t.Fatalf("table not strictly ascending at %d: %d >= %d", i, table[i-1].Code, table[i].Code)
		}
	}
}

var wantPhrases = []Entry{
	{0, "No Response / Unknown Error"},
	{100, "Continue"},
	{101, "Switching Protocols"},
	{102, "Processing"},
	{103, "Early Hints"},
	{200, "OK"},
	{201, "Created"},
	{202, "Accepted"},
	{203, "Non-Authoritative Information"},
	{204, "No Content"},
	{205, "Reset Content"},
	{206, "Partial Content"},
	{207, "Multi-Status"},
	{208, "Already Reported"},
	{226, "IM Used"},
	{300, "Multiple Choices"},
	{301, "Moved Permanently"},
	{302, "Found"},
	{303, "See Other"},
	{304, "Not Modified"},
	{305, "Use Proxy"},
	{307, "Temporary Redirect"},
	{308, "Permanent Redirect"},
	{400, "Bad Request"},
	{401, "Unauthorized"},
	{402, "Payment Required"},
	{403, "Forbidden"},
	{404, "Not Found"},
	{405, "Method Not Allowed"},
	{406, "Not Acceptable"},
	{407, "Proxy Authentication Required"},
	{408, "Request Timeout"},
	{409, "Conflict"},
	{410, "Gone"},
	{411, "Length Required"},
	{412, "Precondition Failed"},
	{413, "Payload Too Large"},
	{414, "URI Too Long"},
	{415, "Unsupported Media Type"},
	{416, "Range Not Satisfiable"},
	{417, "Expectation Failed"},
	{418, "I'm a teapot"},
	{421, "Misdirected Request"},
	{422, "Unprocessable Entity"},
	{423, "Locked"},
	{424, "Failed Dependency"},
	{425, "Too Early"},
	{426, "Upgrade Required"},
	{428, "Precondition Required"},
	{429, "Too Many Requests"},
	{431, "Request Header Fields Too Large"},
	{451, "Unavailable For Legal Reasons"},
	{500, "Internal Server Error"},
	{501, "Not Implemented"},
	{502, "Bad Gateway"},
	{503, "Service Unavailable"},
	{504, "Gateway Timeout"},
	{505, "HTTP Version Not Supported"},
	{506, "Variant Also Negotiates"},
	{507, "Insufficient Storage"},
	{508, "Loop Detected"},
	{510, "Not Extended"},
	{511, "Network Authentication Required"},
}

func TestTableSize(t *testing.T) {
	if len(table) != 63 {
		t.Fatalf("expected 63 entries, got %d", len(table))
	}
}

func TestReasonPhraseGolden(t *testing.T) {
	for _, want := range wantPhrases {
		if got := ReasonPhrase(want.Code); got != want.Reason {
			t.Fatalf("ReasonPhrase(%d) = %q, want %q", want.Code, got, want.Reason)
		}
	}
	if got := Entries(); !slices.Equal(got, wantPhrases) {
		t.Fatalf("Entries() differs from the expected table:\n got %v\nwant %v", got, wantPhrases)
	}
}

func TestReasonPhraseEveryEntry(t *testing.T) {
	for _, e := range table {
		if got := ReasonPhrase(e.Code); got != e.Reason {
			t.Fatalf("ReasonPhrase(%d) = %q, want %q", e.Code, got, e.Reason)
		}
		if !Known(e.Code) {
			t.Fatalf("expected %d to be known", e.Code)
		}
	}
}

func TestReasonPhraseUnknownCodes(t *testing.T) {
	for _, code := range []int{-1, 1, 99, 104, 199, 209, 306, 309, 419, 420, 427, 430, 450, 509, 512, 599, 600, 999999, math.MinInt, math.MaxInt} {
		if got := ReasonPhrase(code); got != UnknownReason {
			t.Fatalf("ReasonPhrase(%d) = %q, want %q", code, got, UnknownReason)
		}
		if _, ok := Lookup(code); ok {
			t.Fatalf("Lookup(%d) reported found", code)
		}
	}
}

func TestZeroIsDistinctFromUnknown(t *testing.T) {
	if ReasonPhrase(0) == UnknownReason {
		t.Fatalf("code 0 must not fall back to %q", UnknownReason)
	}
	if !Known(0) {
		t.Fatalf("code 0 should be known")
	}
}

func TestReasonPhraseIdempotent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if ReasonPhrase(404) != "Not Found" || ReasonPhrase(600) != UnknownReason {
					t.Errorf("lookup changed between calls")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestEntriesReturnsCopy(t *testing.T) {
	entries := Entries()
	if len(entries) != len(table) {
		t.Fatalf("expected %d entries, got %d", len(table), len(entries))
	}
	entries[0].Reason = "mutated"
	if ReasonPhrase(0) != "No Response / Unknown Error" {
		t.Fatalf("mutating Entries result leaked into the table")
	}
}

func TestPredicateBoundaries(t *testing.T) {
	cases := []struct {
		name string
		fn   func(int) bool
		lo   int
	}{
		{"IsInformational", IsInformational, 100},
		{"IsSuccess", IsSuccess, 200},
		{"IsRedirection", IsRedirection, 300},
		{"IsClientError", IsClientError, 400},
		{"IsServerError", IsServerError, 500},
	}
	for _, tc := range cases {
		hi := tc.lo + 100
		if tc.fn(tc.lo - 1) {
			t.Fatalf("%s(%d) should be false", tc.name, tc.lo-1)
		}
		if !tc.fn(tc.lo) {
			t.Fatalf("%s(%d) should be true", tc.name, tc.lo)
		}
		if !tc.fn(hi - 1) {
			t.Fatalf("%s(%d) should be true", tc.name, hi-1)
		}
		if tc.fn(hi) {
			t.Fatalf("%s(%d) should be false", tc.name, hi)
		}
	}
}

func TestIsErrorCoversTableGaps(t *testing.T) {
	if !IsError(599) || Known(599) {
		t.Fatalf("599 should be an error without a phrase")
	}
	if !IsError(499) || !IsError(400) {
		t.Fatalf("4xx bounds should be errors")
	}
	if IsError(399) || IsError(600) {
		t.Fatalf("399 and 600 are not errors")
	}
}

func TestClassOf(t *testing.T) {
	cases := map[int]Class{
		-1:  ClassUnknown,
		0:   ClassUnknown,
		99:  ClassUnknown,
		100: ClassInformational,
		204: ClassSuccess,
		302: ClassRedirection,
		429: ClassClientError,
		599: ClassServerError,
		600: ClassUnknown,
	}
	for code, want := range cases {
		if got := ClassOf(code); got != want {
			t.Fatalf("ClassOf(%d) = %v, want %v", code, got, want)
		}
	}
	if ClassClientError.String() != "client_error" || ClassUnknown.String() != "unknown" {
		t.Fatalf("unexpected class names")
	}
	if !ClassServerError.IsError() || ClassRedirection.IsError() {
		t.Fatalf("unexpected Class.IsError results")
	}
}

func FuzzClassPartition(f *testing.F) {
	for _, seed := range []int{-1, 0, 99, 100, 199, 200, 299, 300, 399, 400, 499, 500, 599, 600, 999999} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, code int) {
		held := 0
		for _, ok := range []bool{
			code < 100,
			IsInformational(code),
			IsSuccess(code),
			IsRedirection(code),
			IsClientError(code),
			IsServerError(code),
			code >= 600,
		} {
			if ok {
				held++
			}
		}
		if held != 1 {
			t.Fatalf("code %d matched %d bands", code, held)
		}
		if IsError(code) != (IsClientError(code) || IsServerError(code)) {
			t.Fatalf("IsError(%d) disagrees with its parts", code)
		}
		if ClassOf(code).IsError() != IsError(code) {
			t.Fatalf("ClassOf(%d).IsError() disagrees with IsError", code)
		}

		reason, ok := Lookup(code)
		if ok != Known(code) {
			t.Fatalf("Lookup and Known disagree for %d", code)
		}
		if !ok && ReasonPhrase(code) != UnknownReason {
			t.Fatalf("unknown code %d returned %q", code, ReasonPhrase(code))
		}
		if ok && ReasonPhrase(code) != reason {
			t.Fatalf("ReasonPhrase(%d) = %q, Lookup = %q", code, ReasonPhrase(code), reason)
		}
	})
}
