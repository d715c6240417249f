package ai

import "ai_site_builder/internal/types"

const fallbackTitle = "Your Professional Website"

const fallbackHTML = `<div class="min-h-screen bg-white">
    <header class="bg-gradient-to-r from-blue-600 to-purple-600 text-white">
        <div class="container mx-auto px-6 py-20">
            <div class="text-center">
                <h1 class="text-5xl font-bold mb-4">Welcome to Your Website</h1>
                <p class="text-xl mb-8">Professional, modern, and ready for your business</p>
                <button class="bg-white text-blue-600 px-8 py-3 rounded-lg font-semibold hover:bg-gray-100 transition duration-300">
                    Get Started
                </button>
            </div>
        </div>
    </header>

    <section id="about" class="py-20 bg-gray-50">
        <div class="container mx-auto px-6">
            <div class="text-center mb-12">
                <h2 class="text-4xl font-bold text-gray-800 mb-4">About Us</h2>
                <p class="text-lg text-gray-600 max-w-2xl mx-auto">
                    We provide exceptional services with a focus on quality, innovation, and customer satisfaction.
                </p>
            </div>
            <div class="grid grid-cols-1 md:grid-cols-3 gap-8">
                <div class="text-center p-6 bg-white rounded-lg shadow-md">
                    <div class="w-16 h-16 bg-blue-600 rounded-full mx-auto mb-4 flex items-center justify-center">
                        <span class="text-white text-2xl">⭐</span>
                    </div>
                    <h3 class="text-xl font-semibold mb-2">Quality</h3>
                    <p class="text-gray-600">Excellence in everything we do</p>
                </div>
                <div class="text-center p-6 bg-white rounded-lg shadow-md">
                    <div class="w-16 h-16 bg-purple-600 rounded-full mx-auto mb-4 flex items-center justify-center">
                        <span class="text-white text-2xl">🚀</span>
                    </div>
                    <h3 class="text-xl font-semibold mb-2">Innovation</h3>
                    <p class="text-gray-600">Cutting-edge solutions for modern needs</p>
                </div>
                <div class="text-center p-6 bg-white rounded-lg shadow-md">
                    <div class="w-16 h-16 bg-green-600 rounded-full mx-auto mb-4 flex items-center justify-center">
                        <span class="text-white text-2xl">💎</span>
                    </div>
                    <h3 class="text-xl font-semibold mb-2">Support</h3>
                    <p class="text-gray-600">Round-the-clock customer service and support</p>
                </div>
            </div>
        </div>
    </section>

    <section id="services" class="py-20">
        <div class="container mx-auto px-6">
            <div class="text-center mb-12">
                <h2 class="text-4xl font-bold text-gray-800 mb-4">Our Services</h2>
                <p class="text-lg text-gray-600 max-w-2xl mx-auto">
                    Comprehensive solutions tailored to meet your specific needs and goals.
                </p>
            </div>
            <div class="grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8">
                <div class="p-6 border border-gray-200 rounded-lg hover:shadow-lg transition duration-300">
                    <h3 class="text-xl font-semibold mb-4 text-blue-600">Service One</h3>
                    <p class="text-gray-600 mb-4">Professional service designed to help your business grow and succeed.</p>
                    <a href="#contact" class="text-blue-600 font-semibold hover:text-blue-800">Learn More →</a>
                </div>
                <div class="p-6 border border-gray-200 rounded-lg hover:shadow-lg transition duration-300">
                    <h3 class="text-xl font-semibold mb-4 text-purple-600">Service Two</h3>
                    <p class="text-gray-600 mb-4">Expert solutions with proven results and exceptional customer satisfaction.</p>
                    <a href="#contact" class="text-purple-600 font-semibold hover:text-purple-800">Learn More →</a>
                </div>
                <div class="p-6 border border-gray-200 rounded-lg hover:shadow-lg transition duration-300">
                    <h3 class="text-xl font-semibold mb-4 text-green-600">Service Three</h3>
                    <p class="text-gray-600 mb-4">Innovative approaches to solve complex challenges and drive success.</p>
                    <a href="#contact" class="text-green-600 font-semibold hover:text-green-800">Learn More →</a>
                </div>
            </div>
        </div>
    </section>

    <section id="contact" class="py-20 bg-gray-800 text-white">
        <div class="container mx-auto px-6">
            <div class="text-center mb-12">
                <h2 class="text-4xl font-bold mb-4">Get In Touch</h2>
                <p class="text-lg text-gray-300 max-w-2xl mx-auto">
                    Ready to start your project? Contact us today for a consultation.
                </p>
            </div>
            <div class="max-w-lg mx-auto">
                <form class="space-y-6">
                    <input type="text" placeholder="Your Name"
                           class="w-full px-4 py-3 rounded-lg bg-gray-700 text-white placeholder-gray-400 border border-gray-600 focus:border-blue-500 focus:outline-none">
                    <input type="email" placeholder="Your Email"
                           class="w-full px-4 py-3 rounded-lg bg-gray-700 text-white placeholder-gray-400 border border-gray-600 focus:border-blue-500 focus:outline-none">
                    <textarea placeholder="Your Message" rows="4"
                              class="w-full px-4 py-3 rounded-lg bg-gray-700 text-white placeholder-gray-400 border border-gray-600 focus:border-blue-500 focus:outline-none"></textarea>
                    <button type="submit"
                            class="w-full bg-blue-600 text-white py-3 rounded-lg font-semibold hover:bg-blue-700 transition duration-300">
                        Send Message
                    </button>
                </form>
            </div>
        </div>
    </section>

    <footer class="bg-gray-900 text-white py-8">
        <div class="container mx-auto px-6 text-center">
            <p>&copy; Your Business Name. All rights reserved.</p>
            <p class="mt-2 text-gray-400">Built with AI Website Builder</p>
        </div>
    </footer>
</div>`

var fallbackSections = []types.Section{
	{
		ID:      "hero",
		Type:    types.SectionHero,
		Title:   "Hero Section",
		Content: `<div class="bg-gradient-to-r from-blue-600 to-purple-600 text-white py-20"><div class="container mx-auto text-center"><h1 class="text-5xl font-bold mb-4">Welcome to Your Website</h1><p class="text-xl mb-8">Professional, modern, and ready for your business</p></div></div>`,
	},
	{
		ID:      "about",
		Type:    types.SectionAbout,
		Title:   "About Us",
		Content: `<div class="py-20 bg-gray-50"><div class="container mx-auto"><h2 class="text-4xl font-bold text-center mb-8">About Us</h2><p class="text-lg text-gray-600 text-center max-w-2xl mx-auto">We provide exceptional services with a focus on quality, innovation, and customer satisfaction.</p></div></div>`,
	},
	{
		ID:      "services",
		Type:    types.SectionServices,
		Title:   "Services",
		Content: `<div class="py-20"><div class="container mx-auto"><h2 class="text-4xl font-bold text-center mb-8">Our Services</h2><p class="text-lg text-gray-600 text-center max-w-2xl mx-auto">Comprehensive solutions tailored to meet your specific needs.</p></div></div>`,
	},
	{
		ID:      "contact",
		Type:    types.SectionContact,
		Title:   "Contact",
		Content: `<div class="py-20 bg-gray-800 text-white"><div class="container mx-auto text-center"><h2 class="text-4xl font-bold mb-8">Get In Touch</h2><p class="text-lg mb-8">Ready to start your project? Contact us today.</p></div></div>`,
	},
}

// FallbackWebsite returns a fresh copy of the generic site served whenever
// generation fails. Callers may modify the result.
func FallbackWebsite() *types.WebsiteRecord {
	sections := make([]types.Section, len(fallbackSections))
	copy(sections, fallbackSections)

	return &types.WebsiteRecord{
		Title:       fallbackTitle,
		Description: "A modern, professional website for your business",
		HTML:        fallbackHTML,
		CSS:         "",
		Sections:    sections,
		Theme:       DefaultTheme(),
	}
}
