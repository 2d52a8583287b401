package awslogs

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "logalert/pkg/errors"
)

func TestRepairEntry(t *testing.T) {
	body, err := RepairEntry(`prefix-noise{"a":1}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, body)

	_, err = RepairEntry("no braces here")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrFormat))
	assert.True(t, errors.Is(err, ErrNoJSONBody))
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    interface{}
		wantErr *apperrors.Error
	}{
		{
			name:    "prefixed object",
			message: `prefix-noise{"a":1}`,
			want:    map[string]interface{}{"a": json.Number("1")},
		},
		{
			name:    "lambda error line",
			message: "2022-03-14T21:31:36.819Z\tdeea944e\tERROR\tInvoke Error \t{\"errorType\":\"Error\"}\n",
			want:    map[string]interface{}{"errorType": "Error"},
		},
		{
			name:    "large integer kept exact",
			message: `id={"id":36735872539779335322665442786606994876801460262461046793}`,
			want:    map[string]interface{}{"id": json.Number("36735872539779335322665442786606994876801460262461046793")},
		},
		{
			name:    "no brace",
			message: "START RequestId: 1234 Version: $LATEST",
			wantErr: apperrors.ErrFormat,
		},
		{
			name:    "malformed json",
			message: `oops {"a":`,
			wantErr: apperrors.ErrParse,
		},
		{
			name:    "trailing text",
			message: `x {"a":1} and more`,
			wantErr: apperrors.ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntry(tt.message)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBatch(t *testing.T) {
	text := []byte(`{
		"messageType": "DATA_MESSAGE",
		"owner": "123456789012",
		"logGroup": "/aws/lambda/my-fn",
		"logStream": "2022/03/14/[$LATEST]abc",
		"subscriptionFilters": ["errors"],
		"logEvents": [
			{"id": "1", "timestamp": 1, "message": "a {\"n\":1}"},
			{"id": "2", "timestamp": 2, "message": "b [1,2]"},
			{"id": "3", "timestamp": 3, "message": "c {\"n\":3}"}
		]
	}`)

	batch, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, "DATA_MESSAGE", batch.MessageType)
	assert.Equal(t, "123456789012", batch.Owner)
	assert.Equal(t, "/aws/lambda/my-fn", batch.LogGroup)
	assert.Equal(t, "2022/03/14/[$LATEST]abc", batch.LogStream)
	assert.Equal(t, []string{"errors"}, batch.SubscriptionFilters)
	assert.True(t, batch.HasLogGroup)
	assert.True(t, batch.HasLogStream)
	require.Len(t, batch.LogEvents, 3)
	assert.Equal(t, map[string]interface{}{"n": json.Number("1")}, batch.LogEvents[0])
	assert.Equal(t, map[string]interface{}{"n": json.Number("3")}, batch.LogEvents[2])
}

func TestParseBatchArrayAfterBrace(t *testing.T) {
	// The first '{' wins even when an array appears earlier in the line.
	batch, err := Parse([]byte(`{"logEvents":[{"message":"[1] {\"k\":true}"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []interface{}{map[string]interface{}{"k": true}}, batch.LogEvents)
}

func TestParseBatchFailsOnAnyBadEntry(t *testing.T) {
	text := []byte(`{
		"logGroup": "/aws/lambda/my-fn",
		"logStream": "s",
		"logEvents": [
			{"id": "1", "message": "ok {\"a\":1}"},
			{"id": "2", "message": "no braces here"}
		]
	}`)

	batch, err := Parse(text)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrFormat))
	assert.Empty(t, batch.LogEvents)

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 1, appErr.Details["log_event_index"])
	assert.Equal(t, "2", appErr.Details["log_event_id"])
}

func TestParseBatchErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "malformed", text: `{"logEvents": [`},
		{name: "not an object", text: `[1, 2, 3]`},
		{name: "null", text: `null`},
		{name: "missing logEvents", text: `{"logGroup": "g", "logStream": "s"}`},
		{name: "null logEvents", text: `{"logEvents": null}`},
		{name: "wrong type", text: `{"logGroup": 7, "logEvents": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.text))
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrParse), "got %v", err)
		})
	}
}
