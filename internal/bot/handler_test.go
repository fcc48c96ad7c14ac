package bot

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/learnbot/internal/evaluate"
	"github.com/abhisek/learnbot/internal/profile"
	"github.com/abhisek/learnbot/internal/quiz"
)

func testHandler(t *testing.T) (*Handler, *profile.Store, *SessionStore) {
	t.Helper()
	profiles, err := profile.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sessions := NewSessionStore()
	provider := quiz.NewProvider(nil, quiz.NewFallback(), 0, nil)
	evaluator := evaluate.New(profiles, nil, nil)
	h := NewHandler(profiles, provider, evaluator, sessions, nil, nil)
	return h, profiles, sessions
}

func TestHandleMessage_Help(t *testing.T) {
	h, _, _ := testHandler(t)

	reply := h.HandleMessage(context.Background(), "user-1", "Ada", "/help")
	for _, want := range []string{"/enroll", "/quiz", "python-basics", "web-dev"} {
		if !strings.Contains(reply, want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func TestHandleMessage_EnrollFlow(t *testing.T) {
	h, profiles, _ := testHandler(t)
	ctx := context.Background()

	reply := h.HandleMessage(ctx, "user-1", "Ada", "/enroll")
	if !strings.Contains(reply, "Please specify a course") {
		t.Errorf("expected usage message, got %q", reply)
	}

	reply = h.HandleMessage(ctx, "user-1", "Ada", "/enroll knitting")
	if !strings.Contains(reply, "not found") {
		t.Errorf("expected unknown-course message, got %q", reply)
	}

	reply = h.HandleMessage(ctx, "user-1", "Ada", "/enroll python-basics")
	if !strings.Contains(reply, "Enrollment Successful") {
		t.Errorf("expected success message, got %q", reply)
	}
	if !strings.Contains(reply, "Ada") {
		t.Errorf("expected student name in reply, got %q", reply)
	}

	p, err := profiles.Get("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.EnrolledCourse != "python-basics" {
		t.Errorf("enrollment not persisted, got %q", p.EnrolledCourse)
	}
}

func TestHandleMessage_EnrollCaseInsensitive(t *testing.T) {
	h, profiles, _ := testHandler(t)

	reply := h.HandleMessage(context.Background(), "user-1", "Ada", "/ENROLL Python-Basics")
	if !strings.Contains(reply, "Enrollment Successful") {
		t.Errorf("expected success, got %q", reply)
	}
	p, err := profiles.Get("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.EnrolledCourse != "python-basics" {
		t.Errorf("expected lowercased course id, got %q", p.EnrolledCourse)
	}
}

func TestHandleMessage_ProfileWithoutEnrollment(t *testing.T) {
	h, _, _ := testHandler(t)

	reply := h.HandleMessage(context.Background(), "user-1", "Ada", "/profile")
	if !strings.Contains(reply, "No Profile Found") {
		t.Errorf("expected no-profile message, got %q", reply)
	}
}

func TestHandleMessage_Profile(t *testing.T) {
	h, profiles, _ := testHandler(t)
	if _, err := profiles.Enroll("user-1", "python-basics"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reply := h.HandleMessage(context.Background(), "user-1", "Ada", "/profile")
	for _, want := range []string{"Learning Profile", "python-basics", "Accuracy"} {
		if !strings.Contains(reply, want) {
			t.Errorf("profile missing %q in %q", want, reply)
		}
	}
}

func TestHandleMessage_QuizRequiresEnrollment(t *testing.T) {
	h, _, sessions := testHandler(t)

	reply := h.HandleMessage(context.Background(), "user-1", "Ada", "/quiz")
	if !strings.Contains(reply, "No Profile Found") {
		t.Errorf("expected no-profile message, got %q", reply)
	}
	if sessions.Pending("user-1") != nil {
		t.Error("no question should be pending")
	}
}

func TestHandleMessage_QuizAndAnswer(t *testing.T) {
	h, profiles, sessions := testHandler(t)
	ctx := context.Background()
	if _, err := profiles.Enroll("user-1", "python-basics"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reply := h.HandleMessage(ctx, "user-1", "Ada", "/quiz")
	if !strings.Contains(reply, "Quiz Time") {
		t.Errorf("expected quiz header, got %q", reply)
	}
	q := sessions.Pending("user-1")
	if q == nil {
		t.Fatal("expected a pending question")
	}

	reply = h.HandleMessage(ctx, "user-1", "Ada", string(q.CorrectAnswer))
	if !strings.Contains(reply, "Correct") {
		t.Errorf("expected correct feedback, got %q", reply)
	}
	if sessions.Pending("user-1") != nil {
		t.Error("answer should clear the pending question")
	}

	p, err := profiles.Get("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TotalQuestions != 1 || p.CorrectAnswers != 1 {
		t.Errorf("counters not updated: %d/%d", p.CorrectAnswers, p.TotalQuestions)
	}
}

func TestHandleMessage_RepeatQuizKeepsPending(t *testing.T) {
	h, profiles, sessions := testHandler(t)
	ctx := context.Background()
	if _, err := profiles.Enroll("user-1", "python-basics"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h.HandleMessage(ctx, "user-1", "Ada", "/quiz")
	first := sessions.Pending("user-1")

	reply := h.HandleMessage(ctx, "user-1", "Ada", "/quiz")
	if !strings.Contains(reply, "already have a question") {
		t.Errorf("expected pending reminder, got %q", reply)
	}
	if sessions.Pending("user-1") != first {
		t.Error("pending question must not be replaced")
	}
}

func TestHandleMessage_Cancel(t *testing.T) {
	h, profiles, sessions := testHandler(t)
	ctx := context.Background()
	if _, err := profiles.Enroll("user-1", "python-basics"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reply := h.HandleMessage(ctx, "user-1", "Ada", "/cancel")
	if !strings.Contains(reply, "no quiz in progress") {
		t.Errorf("expected nothing-to-cancel message, got %q", reply)
	}

	h.HandleMessage(ctx, "user-1", "Ada", "/quiz")
	reply = h.HandleMessage(ctx, "user-1", "Ada", "/cancel")
	if !strings.Contains(reply, "cancelled") {
		t.Errorf("expected cancel confirmation, got %q", reply)
	}
	if sessions.Pending("user-1") != nil {
		t.Error("cancel should drop the pending question")
	}

	// Cancelling must not touch counters.
	p, err := profiles.Get("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TotalQuestions != 0 {
		t.Errorf("cancel mutated the profile: %d", p.TotalQuestions)
	}
}

func TestHandleMessage_EchoWithoutPending(t *testing.T) {
	h, _, _ := testHandler(t)

	reply := h.HandleMessage(context.Background(), "user-1", "Ada", "hello there")
	if !strings.Contains(reply, "You said: hello there") {
		t.Errorf("expected echo, got %q", reply)
	}
	if !strings.Contains(reply, "/help") {
		t.Errorf("expected command hint, got %q", reply)
	}
}

func TestHandleMessage_Status(t *testing.T) {
	h, profiles, _ := testHandler(t)
	if _, err := profiles.Enroll("user-1", "python-basics"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reply := h.HandleMessage(context.Background(), "user-2", "Grace", "/status")
	for _, want := range []string{"System Status", "Total Users: 1", "Enrolled Users: 1"} {
		if !strings.Contains(reply, want) {
			t.Errorf("status missing %q in %q", want, reply)
		}
	}
}

func TestHandleMessage_Admin(t *testing.T) {
	h, profiles, _ := testHandler(t)
	if _, err := profiles.Enroll("user-1", "data-science"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reply := h.HandleMessage(context.Background(), "admin", "Root", "/admin")
	for _, want := range []string{"Admin Dashboard", "data-science"} {
		if !strings.Contains(reply, want) {
			t.Errorf("admin missing %q in %q", want, reply)
		}
	}
}

func TestWelcomeMessage(t *testing.T) {
	h, _, _ := testHandler(t)
	msg := h.WelcomeMessage()
	for _, want := range []string{"Welcome", "/help", "python-basics"} {
		if !strings.Contains(msg, want) {
			t.Errorf("welcome missing %q", want)
		}
	}
}

func TestSessionStore(t *testing.T) {
	s := NewSessionStore()
	if s.Pending("u") != nil {
		t.Error("expected empty store")
	}

	q := &quiz.Question{ID: "q1"}
	s.Set("u", q)
	if s.Pending("u") != q {
		t.Error("expected stored question back")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 pending, got %d", s.Len())
	}

	if !s.Clear("u") {
		t.Error("expected Clear to report a dropped question")
	}
	if s.Clear("u") {
		t.Error("expected second Clear to report nothing")
	}
}
