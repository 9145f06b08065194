package fallback

// Category names, also used as metric labels.
const (
	CategoryGreeting       = "greeting"
	CategoryEvents         = "events"
	CategorySafety         = "safety"
	CategoryMarketplace    = "marketplace"
	CategoryCivic          = "civic"
	CategoryHelpExchange   = "help_exchange"
	CategoryMap            = "map"
	CategoryGettingStarted = "getting_started"
	CategoryFeatures       = "features"
	CategoryDefault        = "default"
)

// Bucket is a topic with its trigger keywords and canned answers.
// Keywords are lower-case and matched as substrings.
type Bucket struct {
	Name      string
	Keywords  []string
	Responses []string
}

// buckets is evaluated top to bottom and the first match wins.
// Keep this order when adding keywords: "help" or "how" appear in
// many questions and only lose because earlier buckets are checked first.
var buckets = []Bucket{
	{
		Name:     CategoryGreeting,
		Keywords: []string{"hello", "hi", "hey", "good"},
		Responses: []string{
			"Hello! I'm your HelpHood assistant. I can help you learn about our community features like events, safety alerts, marketplace, and more. What would you like to know?",
			"Hi there! Welcome to HelpHood! I'm here to help you discover how our platform can strengthen your neighborhood. What interests you most?",
			"Hey! Great to see you here. HelpHood has amazing tools for community building. Would you like to learn about events, safety features, or our marketplace?",
		},
	},
	{
		Name:     CategoryEvents,
		Keywords: []string{"event", "calendar", "party", "meetup", "organize"},
		Responses: []string{
			"HelpHood's Community Events feature makes organizing neighborhood activities super easy! You can plan cleanups, festivals, block parties, and meetups. The platform handles RSVPs, reminders, and even helps you find volunteers. Want to know how to create your first event?",
			"Planning community events is one of HelpHood's most popular features! From small coffee meetups to large festivals, you can organize everything in one place. The system sends automatic reminders and tracks attendance. What kind of event are you thinking about?",
			"Community Events on HelpHood bring neighbors together! You can schedule anything from book clubs to neighborhood cleanups. The platform makes it easy to manage invitations, track RSVPs, and coordinate with volunteers. Ready to start planning?",
		},
	},
	{
		Name:     CategorySafety,
		Keywords: []string{"safety", "alert", "security", "emergency", "crime"},
		Responses: []string{
			"HelpHood's Safety Alerts keep your neighborhood informed and secure! You can receive instant notifications about emergencies, suspicious activity, or weather warnings. All alerts are verified to prevent false alarms. You can also create alerts to help keep your community safe.",
			"Safety is our top priority! Our alert system sends real-time notifications about neighborhood security issues, weather emergencies, and important updates. You can customize which alerts you receive and even report incidents yourself. Your community's safety network is stronger together!",
			"Our Safety Alert feature creates a protective network for your neighborhood. Get verified alerts about crime, emergencies, or suspicious activity. You can also contribute by reporting incidents you witness. It's like having a neighborhood watch that never sleeps!",
		},
	},
	{
		Name:     CategoryMarketplace,
		Keywords: []string{"marketplace", "sell", "buy", "trade", "shop", "local business"},
		Responses: []string{
			"The HelpHood Marketplace connects you with verified neighbors for safe local trading! Buy, sell, or donate items while supporting your local economy. All users are verified for security, and you can see ratings and reviews. It's like having a trusted neighborhood garage sale 24/7!",
			"Our Local Marketplace makes neighborhood commerce safe and easy! Whether you're selling furniture, buying fresh produce, or donating clothes, you're dealing with verified neighbors. The platform includes secure messaging, ratings, and even helps coordinate pickup times.",
			"Love supporting local? Our Marketplace feature lets you trade with verified neighbors safely. From handmade crafts to household items, you can buy, sell, or donate while building community connections. Plus, all transactions stay within your neighborhood!",
		},
	},
	{
		Name:     CategoryCivic,
		Keywords: []string{"feedback", "report", "civic", "government", "city", "pothole", "streetlight"},
		Responses: []string{
			"HelpHood's Civic Feedback tool gives your neighborhood a direct line to local authorities! Report potholes, broken streetlights, garbage issues, or suggest improvements. You can track the progress of your reports and see what your neighbors are reporting too. Your voice matters in local government!",
			"Make your voice heard with our Civic Feedback feature! Report neighborhood issues directly to city officials, track progress on repairs, and vote on community priorities. It's democracy in action, making it easy to improve your local area one report at a time.",
			"Our Civic Feedback system empowers residents to drive real change! Whether it's reporting infrastructure problems or suggesting park improvements, you can communicate directly with local authorities. The platform tracks all reports and shows you the impact your community is making.",
		},
	},
	{
		Name:     CategoryHelpExchange,
		Keywords: []string{"help", "exchange", "volunteer", "assist", "neighbor", "support"},
		Responses: []string{
			"Help Exchange is where neighbors become heroes! Whether you need tutoring, home repairs, childcare, or pet sitting, you can connect with skilled neighbors. You can also offer your own talents to help others. It's a beautiful cycle of community support!",
			"Our Help Exchange feature builds the supportive community we all want to live in! Offer your skills in cooking, gardening, tech support, or anything else, and find neighbors who can help you too. All users are verified, and the rating system ensures quality connections.",
			"The Help Exchange creates a network of mutual support in your neighborhood! From emergency babysitting to moving help, neighbors helping neighbors makes everything easier. You can browse available help or post what you need. Community support has never been this organized!",
		},
	},
	{
		Name:     CategoryMap,
		Keywords: []string{"map", "location", "navigate", "emoji", "incident"},
		Responses: []string{
			"Our Interactive Neighborhood Map is like a real-time community bulletin board! Click anywhere to report incidents, see what's happening nearby, and stay informed about local events. The emoji-based reporting system makes it fun and easy to keep everyone updated.",
			"The HelpHood Map brings your neighborhood to life! See real-time reports from neighbors, find local events, and report incidents using our fun emoji system. It's your neighborhood's pulse, showing everything from lost pets to block parties.",
			"Navigate your community like never before with our Interactive Map! Report and view local incidents, find nearby events, and see what your neighbors are sharing. The visual, emoji-based system makes community awareness engaging and informative.",
		},
	},
	{
		Name:     CategoryGettingStarted,
		Keywords: []string{"how", "start", "begin", "sign up", "join", "create account"},
		Responses: []string{
			"Getting started with HelpHood is super easy! 1) Create your verified profile with basic info, 2) Explore features like events and marketplace, 3) Start connecting with neighbors and building your community. Which feature would you like to try first?",
			"Welcome to the HelpHood family! Starting is simple: sign up with verification, browse your neighborhood's current activities, and jump in wherever interests you most. Whether it's joining an event or offering help, every interaction strengthens your community!",
			"Ready to transform your neighborhood? Here's how: 1) Set up your verified profile, 2) Explore what neighbors are already doing, 3) Start participating in events, marketplace, or help exchange. Your community journey begins with a single connection!",
		},
	},
	{
		Name:     CategoryFeatures,
		Keywords: []string{"feature", "what can", "what does", "overview"},
		Responses: []string{
			"HelpHood offers six main features to strengthen your community: 🗓️ Community Events for organizing gatherings, 🚨 Safety Alerts for neighborhood security, 🛒 Local Marketplace for trading with neighbors, 🏛️ Civic Feedback for reporting issues, 🤝 Help Exchange for mutual support, and 🗺️ Interactive Map for real-time updates!",
			"Our platform has everything your neighborhood needs! Plan events, stay safe with alerts, trade locally in our marketplace, report civic issues, exchange help with neighbors, and use our interactive map to stay connected. Which feature sounds most interesting to you?",
		},
	},
}

var defaultBucket = Bucket{
	Name: CategoryDefault,
	Responses: []string{
		"I'm here to help you navigate HelpHood's amazing community features! You can ask me about community events, safety alerts, our local marketplace, civic feedback, help exchange, or our interactive map. What would you like to explore first?",
		"HelpHood has so many ways to strengthen your neighborhood! I can tell you about organizing events, staying safe with alerts, trading in our marketplace, reporting civic issues, exchanging help with neighbors, or using our interactive map. What interests you most?",
		"Welcome to HelpHood! I'm excited to help you discover how our platform can transform your neighborhood. Whether you're interested in events, safety, commerce, civic engagement, or community support, I've got answers. What would you like to know?",
		"There's so much to explore on HelpHood! From planning community events to staying safe with alerts, from local trading to civic engagement, our platform has everything your neighborhood needs. What feature would you like to learn about?",
	},
}

// Buckets returns a copy of the topic buckets in priority order,
// followed by the default bucket.
func Buckets() []Bucket {
	out := make([]Bucket, 0, len(buckets)+1)
	for _, b := range buckets {
		out = append(out, b.clone())
	}
	return append(out, defaultBucket.clone())
}

func (b Bucket) clone() Bucket {
	return Bucket{
		Name:      b.Name,
		Keywords:  append([]string(nil), b.Keywords...),
		Responses: append([]string(nil), b.Responses...),
	}
}
