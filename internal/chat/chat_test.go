package chat

import "testing"

func TestDispatch_ImagePrefix(t *testing.T) {
	a := Dispatch("/resim uzayda bir kedi", Attachment{})
	if a.Kind != ActionImage {
		t.Fatalf("kind = %v, want ActionImage", a.Kind)
	}
	if a.Text != "uzayda bir kedi" {
		t.Errorf("prompt = %q", a.Text)
	}
}

func TestDispatch_VideoPrefix(t *testing.T) {
	a := Dispatch("/video yanardağ patlaması", Attachment{})
	if a.Kind != ActionVideo {
		t.Fatalf("kind = %v, want ActionVideo", a.Kind)
	}
	if a.Text != "yanardağ patlaması" {
		t.Errorf("prompt = %q", a.Text)
	}
}

func TestDispatch_PlainText(t *testing.T) {
	att := Attachment{Kind: AttachmentImage, Data: []byte{1, 2}, MIMEType: "image/png"}
	a := Dispatch("fotosentez nedir?", att)
	if a.Kind != ActionTutor {
		t.Fatalf("kind = %v, want ActionTutor", a.Kind)
	}
	if a.Text != "fotosentez nedir?" {
		t.Errorf("text = %q", a.Text)
	}
	if a.Attachment.Kind != AttachmentImage {
		t.Error("attachment not carried through")
	}
}

func TestDispatch_PrefixRules(t *testing.T) {
	// Case-sensitive, exact prefix: these all go to the tutor.
	for _, text := range []string{
		"/Resim kedi",
		" /resim kedi",
		"/resim", // no trailing space, no prompt
		"resim çiz lütfen",
	} {
		if a := Dispatch(text, Attachment{}); a.Kind != ActionTutor {
			t.Errorf("Dispatch(%q).Kind = %v, want ActionTutor", text, a.Kind)
		}
	}
}

func TestConversation_AppendOrder(t *testing.T) {
	c := NewConversation("fen")
	c.Append(UserText("merhaba"))
	c.Append(TutorText("Merhaba! Ne öğrenmek istersin?"))

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want 2", len(msgs))
	}
	if msgs[0].Speaker != SpeakerUser || msgs[1].Speaker != SpeakerTutor {
		t.Errorf("order broken: %q then %q", msgs[0].Speaker, msgs[1].Speaker)
	}

	// Returned slice is a copy.
	msgs[0].Body = "değişti"
	if got := c.Messages()[0].Body; got != "merhaba" {
		t.Errorf("log mutated through copy: %q", got)
	}
}

func TestConversation_BusyFlag(t *testing.T) {
	c := NewConversation("matematik")
	if !c.BeginRequest() {
		t.Fatal("first BeginRequest should succeed")
	}
	if c.BeginRequest() {
		t.Fatal("second BeginRequest must fail while in flight")
	}
	c.EndRequest()
	if !c.BeginRequest() {
		t.Fatal("BeginRequest should succeed after EndRequest")
	}
}

func TestMessage_Gradable(t *testing.T) {
	m := Message{
		Presentation: PresentationQuiz,
		Options:      []Option{{Label: LabelA, Text: "bir"}, {Label: LabelB, Text: "iki"}},
		CorrectLabel: LabelA,
	}
	if !m.Gradable() {
		t.Error("expected gradable")
	}

	// Correct label referencing a dropped option is not gradable.
	m.CorrectLabel = LabelD
	if m.Gradable() {
		t.Error("correct label must reference a present option")
	}

	m.CorrectLabel = ""
	if m.Gradable() {
		t.Error("missing correct label must not be gradable")
	}
}
