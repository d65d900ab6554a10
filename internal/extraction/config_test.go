package extraction

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Keywords", func() {
	Describe("DefaultKeywords", func() {
		It("should load the embedded table", func() {
			kw := DefaultKeywords()
			Expect(kw.Totals.Priority).NotTo(BeEmpty())
			Expect(kw.Categories).NotTo(BeEmpty())
		})

		It("should uppercase every keyword", func() {
			kw := DefaultKeywords()
			for _, k := range kw.Totals.Priority {
				Expect(k).To(Equal(strings.ToUpper(k)))
			}
		})
	})

	Describe("LoadKeywords", func() {
		It("should reject a missing file", func() {
			_, err := LoadKeywords("/nonexistent/keywords.yaml")
			Expect(err).To(HaveOccurred())
		})

		It("should reject a table without total keywords", func() {
			path := filepath.Join(GinkgoT().TempDir(), "keywords.yaml")
			Expect(os.WriteFile(path, []byte("categories:\n  - name: Taxi\n    keywords: [UBER]\n"), 0o644)).To(Succeed())
			_, err := LoadKeywords(path)
			Expect(err).To(HaveOccurred())
		})

		It("should load a custom table", func() {
			path := filepath.Join(GinkgoT().TempDir(), "keywords.yaml")
			table := "totals:\n  priority: [total]\ncategories:\n  - name: Taxi\n    keywords: [uber]\n"
			Expect(os.WriteFile(path, []byte(table), 0o644)).To(Succeed())
			kw, err := LoadKeywords(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(kw.Totals.Priority).To(Equal([]string{"TOTAL"}))
			Expect(kw.Categories[0].Keywords).To(Equal([]string{"UBER"}))
		})
	})
})
