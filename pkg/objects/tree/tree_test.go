package tree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goodgit/goodgit/pkg/common/err"
	"github.com/goodgit/goodgit/pkg/objects"
)

// entryBytes builds the on-disk form of one entry.
func entryBytes(mode, name string, hash [20]byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(mode)
	buf.WriteByte(' ')
	buf.WriteString(name)
	buf.WriteByte(0)
	buf.Write(hash[:])
	return buf.Bytes()
}

func seqHash(start byte) [20]byte {
	var h [20]byte
	for i := range h {
		h[i] = start + byte(i)
	}
	return h
}

func TestFromContent(t *testing.T) {
	var content []byte
	content = append(content, entryBytes("100644", "file1.txt", seqHash(0x01))...)
	content = append(content, entryBytes("100644", "file2.txt", seqHash(0x51))...)
	content = append(content, entryBytes("40000", "folder", seqHash(0x81))...)

	tr, e := FromContent(content)
	if e != nil {
		t.Fatalf("FromContent() failed: %v", e)
	}

	entries := tr.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}

	want := []Entry{
		{Mode: ModeNormal, Name: "file1.txt", Hash: "0102030405060708090a0b0c0d0e0f1011121314"},
		{Mode: ModeNormal, Name: "file2.txt", Hash: "5152535455565758595a5b5c5d5e5f6061626364"},
		{Mode: ModeSubtree, Name: "folder", Hash: "8182838485868788898a8b8c8d8e8f9091929394"},
	}
	for i, w := range want {
		if entries[i] != w {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], w)
		}
	}
}

func TestFromContent_PreservesEncounterOrder(t *testing.T) {
	// Entries deliberately out of lexical order; the reader must not
	// reorder them, or round-tripping would change the identifier.
	var content []byte
	content = append(content, entryBytes("100644", "zebra.txt", seqHash(0x01))...)
	content = append(content, entryBytes("100644", "apple.txt", seqHash(0x51))...)

	tr, e := FromContent(content)
	if e != nil {
		t.Fatalf("FromContent() failed: %v", e)
	}

	roundTripped, e := tr.Content()
	if e != nil {
		t.Fatalf("Content() failed: %v", e)
	}
	if !bytes.Equal(roundTripped, content) {
		t.Errorf("round trip changed bytes:\ngot  % x\nwant % x", roundTripped, content)
	}
}

func TestFromContent_EmptyTree(t *testing.T) {
	tr, e := FromContent(nil)
	if e != nil {
		t.Fatalf("FromContent(nil) failed: %v", e)
	}
	if !tr.IsEmpty() {
		t.Error("tree should be empty")
	}

	content, e := tr.Content()
	if e != nil {
		t.Fatalf("Content() failed: %v", e)
	}
	if len(content) != 0 {
		t.Errorf("empty tree content = % x", content)
	}
}

func TestFromContent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		wantMsg string
	}{
		{
			name:    "truncated hash",
			content: []byte("100644 file1.txt\x00\x01"),
			wantMsg: "failed to read hash",
		},
		{
			name:    "unknown mode",
			content: []byte("123456 "),
			wantMsg: "failed to parse mode",
		},
		{
			name:    "missing space",
			content: []byte("100644"),
			wantMsg: "failed to read mode",
		},
		{
			name:    "missing name terminator",
			content: []byte("100644 file1.txt"),
			wantMsg: "failed to read file name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, e := FromContent(tt.content)
			if e == nil {
				t.Fatal("FromContent() should have failed")
			}
			if !strings.Contains(e.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", e.Error(), tt.wantMsg)
			}
			if !err.IsCode(e, err.CodeInvalidFormat) {
				t.Errorf("error code = %q, want %q", err.GetCode(e), err.CodeInvalidFormat)
			}
		})
	}
}

func TestMode_TypeLabel(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeNormal, "blob"},
		{ModeExecutable, "blob"},
		{ModeSymlink, "symlink"},
		{ModeSubtree, "tree"},
		{ModeSubmodule, "submodule"},
	}

	for _, tt := range tests {
		if got := tt.mode.TypeLabel(); got != tt.want {
			t.Errorf("TypeLabel(%s) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestParseMode_Unknown(t *testing.T) {
	for _, bad := range []string{"123456", "100645", "", "040000"} {
		if _, e := ParseMode(bad); e == nil {
			t.Errorf("ParseMode(%q) should have failed", bad)
		}
	}
}

func TestNewEntry_Validation(t *testing.T) {
	hash := objects.ObjectHash("0102030405060708090a0b0c0d0e0f1011121314")

	if _, e := NewEntry(ModeNormal, "", hash); e == nil {
		t.Error("NewEntry with empty name should fail")
	}
	if _, e := NewEntry(ModeNormal, "a\x00b", hash); e == nil {
		t.Error("NewEntry with embedded null should fail")
	}
	if _, e := NewEntry(ModeNormal, "ok.txt", "short"); e == nil {
		t.Error("NewEntry with invalid hash should fail")
	}
}

func TestTree_Hash(t *testing.T) {
	var content []byte
	content = append(content, entryBytes("100644", "file1.txt", seqHash(0x01))...)

	tr, e := FromContent(content)
	if e != nil {
		t.Fatalf("FromContent() failed: %v", e)
	}

	want := objects.NewSerializedObject(objects.TreeType, content).Hash()
	got, e := tr.Hash()
	if e != nil {
		t.Fatalf("Hash() failed: %v", e)
	}
	if got != want {
		t.Errorf("Hash() = %s, want %s", got, want)
	}
}
