package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestForContext(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	previous := L
	L = &logger{entry: logrus.NewEntry(base)}
	t.Cleanup(func() { L = previous })

	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ForContext(ctx).WithFields(Fields{"adset_id": "123"}).Info("recommending: teste")

	assert.Contains(t, buf.String(), `"correlation_id":"`+id+`"`)
	assert.Contains(t, buf.String(), `"adset_id":"123"`)

	buf.Reset()
	ForContext(context.Background()).Info("sem correlação")
	assert.NotContains(t, buf.String(), "correlation_id")
}
