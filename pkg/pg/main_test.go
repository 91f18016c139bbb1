package pg_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/nasvillage-tools/dsconf/pkg/pg"
	"go.uber.org/zap"
)

func TestPg(t *testing.T) {
	pg.Initialize(zap.NewNop().Sugar())
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pg Suite")
}
