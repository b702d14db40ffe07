package obs

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc-1")
	assert.Equal(t, "abc-1", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestTimeRecordsStepStatus(t *testing.T) {
	ctx := context.Background()

	before := testutil.CollectAndCount(stepDuration)

	func() (err error) {
		defer Time(ctx, "test.ok")(&err)
		return nil
	}()
	func() (err error) {
		defer Time(ctx, "test.fail")(&err)
		return errors.New("boom")
	}()

	assert.Equal(t, before+2, testutil.CollectAndCount(stepDuration))
}

func TestRecordUploadCounts(t *testing.T) {
	before := testutil.ToFloat64(uploads.WithLabelValues("ok"))
	RecordUpload("ok")
	assert.Equal(t, before+1, testutil.ToFloat64(uploads.WithLabelValues("ok")))
}

func TestSetActiveSessions(t *testing.T) {
	SetActiveSessions(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(activeSessions))
}
