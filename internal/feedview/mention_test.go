package feedview

import (
	"reflect"
	"testing"
)

func TestExtractMentions(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"great progress @alice @bob keep it up", []string{"alice", "bob"}},
		{"@Alice and @ALICE are the same", []string{"alice"}},
		{"no mentions here", nil},
		{"email me at foo@bar.com", []string{"bar"}}, // matches the original's loose token pattern
		{"", nil},
	}

	for _, tc := range cases {
		if got := ExtractMentions(tc.text); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ExtractMentions(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestMentionQuery(t *testing.T) {
	text := "nice one @al"
	token, ok := MentionQuery(text, len(text))
	if !ok || token != "al" {
		t.Errorf("MentionQuery = (%q, %v), want (al, true)", token, ok)
	}

	// token terminated by a space is no longer a query
	text = "nice one @alice "
	if _, ok := MentionQuery(text, len(text)); ok {
		t.Error("terminated token should not produce a query")
	}

	// cursor in the middle only considers text before it
	text = "@al trailing words"
	token, ok = MentionQuery(text, 3)
	if !ok || token != "al" {
		t.Errorf("MentionQuery mid-cursor = (%q, %v), want (al, true)", token, ok)
	}

	// bare @ yields an empty token
	token, ok = MentionQuery("hey @", 5)
	if !ok || token != "" {
		t.Errorf("MentionQuery bare @ = (%q, %v), want (\"\", true)", token, ok)
	}
}

func TestInsertMention(t *testing.T) {
	text := "great work @al and more"
	cursor := len("great work @al")

	newText, newCursor := InsertMention(text, cursor, "alice")
	want := "great work @alice  and more"
	if newText != want {
		t.Errorf("InsertMention text = %q, want %q", newText, want)
	}
	if newCursor != len("great work @alice ") {
		t.Errorf("InsertMention cursor = %d, want %d", newCursor, len("great work @alice "))
	}

	// no @ before cursor leaves text untouched
	newText, newCursor = InsertMention("hello", 5, "alice")
	if newText != "hello" || newCursor != 5 {
		t.Errorf("InsertMention without @ changed text: %q %d", newText, newCursor)
	}
}
