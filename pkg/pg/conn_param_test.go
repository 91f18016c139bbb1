package pg_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/nasvillage-tools/dsconf/pkg/pg"
)

var _ = Describe("ConnParams", func() {
	var myParams pg.ConnParams
	BeforeEach(func() {
		myParams = pg.ConnParams{"host": "myhost", "port": "5433"}
	})
	Describe("When building a connection string", func() {
		Context("with a single key set", func() {
			It("should render the quoted key value pair", func() {
				Ω(pg.ConnParams{"host": "myhost"}.String()).To(Equal("host='myhost'"))
			})
		})
		Context("with a few keys set", func() {
			It("should contain every quoted key value pair", func() {
				connString := myParams.String()
				Ω(connString).To(ContainSubstring("host='myhost'"))
				Ω(connString).To(ContainSubstring("port='5433'"))
			})
		})
	})
	Describe("When cloning an existing ConnParams object", func() {
		Context("with a few keys set", func() {
			It("the clone should have the same key/value pairs as the original", func() {
				myClone := myParams.Clone()
				for key, value := range myParams {
					Ω(myClone).To(HaveKey(key))
					Ω(myClone).To(ContainElement(value))
				}
			})
		})
	})
})
