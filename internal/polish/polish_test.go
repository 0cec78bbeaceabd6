package polish

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/linresume/internal/profile"
)

type fakeClient struct {
	reply string
	err   error
	calls int
}

func (f *fakeClient) CreateChatCompletion(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.reply}},
		},
	}, nil
}

func TestApply_RewritesSummary(t *testing.T) {
	p := &Polisher{Client: &fakeClient{reply: "Seasoned platform engineer."}, Model: "gpt-4o-mini"}
	in := profile.ProfileData{Name: "Jane", Summary: "i do platform stuff"}
	out := p.Apply(context.Background(), in)

	require.Equal(t, "Seasoned platform engineer.", out.Summary)
	require.Equal(t, "i do platform stuff", in.Summary, "input record is untouched")
}

func TestApply_FailureKeepsScrapedSummary(t *testing.T) {
	p := &Polisher{Client: &fakeClient{err: errors.New("upstream 500")}}
	in := profile.ProfileData{Summary: "original"}
	out := p.Apply(context.Background(), in)
	require.Equal(t, "original", out.Summary)
}

func TestApply_EmptyReplyKeepsScrapedSummary(t *testing.T) {
	p := &Polisher{Client: &fakeClient{reply: "   "}}
	out := p.Apply(context.Background(), profile.ProfileData{Summary: "original"})
	require.Equal(t, "original", out.Summary)
}

func TestApply_SkipsWithoutSummaryOrClient(t *testing.T) {
	fc := &fakeClient{reply: "x"}
	p := &Polisher{Client: fc}
	p.Apply(context.Background(), profile.ProfileData{})
	require.Zero(t, fc.calls, "nothing to polish means no model call")

	inert := &Polisher{}
	out := inert.Apply(context.Background(), profile.ProfileData{Summary: "s"})
	require.Equal(t, "s", out.Summary)
}
